package gen

// goTemplate renders a catalog as Go declarations. Types arrive in the
// collector's advisory order, root first.
const goTemplate = `// Code generated by typeforge from {{.Source}}. DO NOT EDIT.

package {{.Package}}
{{if .NeedsTime}}
import "time"
{{end}}
{{- range .Types}}
{{- if eq (kindOf .) "record"}}

type {{.Name}} struct {
{{- range .Fields}}
	{{goField .Name}} {{goType .}} {{goJSONTag .}}
{{- end}}
}
{{- else if eq (kindOf .) "alias"}}

type {{.Name}} = {{goExpr (index .Alternatives 0)}}
{{- else}}

type {{.Name}} string

const (
{{- $t := .}}
{{- range .Alternatives}}
	{{goField (printf "%s %s" $t.Name .)}} {{$t.Name}} = "{{.}}"
{{- end}}
)
{{- end}}
{{- end}}
`

// tsTemplate renders a catalog as TypeScript declarations.
const tsTemplate = `// Code generated by typeforge from {{.Source}}. DO NOT EDIT.
{{- range .Types}}
{{- if eq (kindOf .) "record"}}

export interface {{.Name}} {
{{- range .Fields}}
  {{tsField .Name}}{{if not .Required}}?{{end}}: {{tsType .TypeRef}};
{{- end}}
}
{{- else if eq (kindOf .) "alias"}}

export type {{.Name}} = {{range $i, $a := .Alternatives}}{{if $i}} | {{end}}{{tsType $a}}{{end}};
{{- else}}

export type {{.Name}} = {{range $i, $a := .Alternatives}}{{if $i}} | {{end}}{{printf "%q" $a}}{{end}};
{{- end}}
{{- end}}
`
