package main

import (
	"fmt"

	"github.com/typeforge/typeforge/internal/loader"
	"github.com/typeforge/typeforge/pkg/infer"
	"github.com/typeforge/typeforge/pkg/sample"
)

// inference bundles the pieces every sample-consuming command needs.
type inference struct {
	loader *loader.Loader
	engine *infer.Engine
	refs   *infer.ReferenceSet
}

// newInference builds a loader and engine, and loads the optional
// reference schema document.
func newInference(refsPath string) (*inference, error) {
	ld, err := loader.New(cfg)
	if err != nil {
		return nil, err
	}

	inf := &inference{loader: ld, engine: infer.NewEngine()}
	if refsPath != "" {
		doc, err := ld.Load(refsPath, "")
		if err != nil {
			return nil, fmt.Errorf("loading references: %w", err)
		}
		refs, err := infer.ParseReferenceSet(doc)
		if err != nil {
			return nil, fmt.Errorf("parsing references %s: %w", refsPath, err)
		}
		inf.refs = refs
	}
	return inf, nil
}

// run loads one sample and infers its catalog. An empty rootName falls
// back to the sample's file name.
func (inf *inference) run(path, selectExpr, rootName string) (*infer.Result, *sample.Value, error) {
	v, err := inf.loader.Load(path, selectExpr)
	if err != nil {
		return nil, nil, err
	}

	if rootName == "" {
		rootName = loader.RootNameFor(path)
	}
	res := inf.engine.Parse(v, infer.Options{
		RootName:   rootName,
		Source:     path,
		References: inf.refs,
	})
	return res, v, nil
}
