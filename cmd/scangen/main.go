// scangen emits a synthetic scan document with a layered dependency graph.
// Useful for exercising and benchmarking the resolver at sizes no hand-written
// fixture reaches.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/anvil-platform/wireplan/api/v1alpha1"
)

func main() {
	var (
		components int
		layers     int
		fanIn      int
		modules    int
		seed       int64
		outPath    string
	)
	flag.IntVar(&components, "components", 200, "number of class components to generate")
	flag.IntVar(&layers, "layers", 8, "number of dependency layers")
	flag.IntVar(&fanIn, "fan-in", 3, "max dependencies per component, drawn from earlier layers")
	flag.IntVar(&modules, "modules", 4, "number of groupings, each with a few factories")
	flag.Int64Var(&seed, "seed", 1, "rng seed for reproducible documents")
	flag.StringVar(&outPath, "out", "-", "output file (JSON), - for stdout")
	flag.Parse()

	if layers < 1 {
		log.Fatal("layers must be >= 1")
	}

	rng := rand.New(rand.NewSource(seed))
	doc := generate(rng, components, layers, fanIn, modules)

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		log.Fatalf("encode: %v", err)
	}
	data = append(data, '\n')

	if outPath == "-" {
		os.Stdout.Write(data)
		return
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		log.Fatalf("write %s: %v", outPath, err)
	}
}

func generate(rng *rand.Rand, components, layers, fanIn, modules int) v1alpha1.ScanDocument {
	doc := v1alpha1.ScanDocument{SchemaVersion: "1.0.0"}

	// Layered components: each depends only on strictly earlier layers, so the
	// generated graph is acyclic by construction.
	perLayer := make([][]string, layers)
	for i := 0; i < components; i++ {
		layer := i * layers / components
		name := fmt.Sprintf("Svc%dL%d", i, layer)
		decl := v1alpha1.ComponentDeclaration{
			Name:        name,
			Declaration: fmt.Sprintf("src/gen/l%d.ts", layer),
			Location:    v1alpha1.SourceLocation{File: fmt.Sprintf("src/gen/l%d.ts", layer), Line: i + 1},
		}
		if layer > 0 {
			pool := perLayer[rng.Intn(layer)]
			n := 1 + rng.Intn(fanIn)
			for d := 0; d < n && d < len(pool); d++ {
				target := pool[rng.Intn(len(pool))]
				decl.Params = append(decl.Params, v1alpha1.ParamDecl{
					Name: fmt.Sprintf("dep%d", d),
					Type: v1alpha1.TypeRef{
						Name:        target,
						Declaration: declOf(target),
					},
				})
			}
		}
		perLayer[layer] = append(perLayer[layer], name)
		doc.Components = append(doc.Components, decl)
	}

	for m := 0; m < modules; m++ {
		mod := v1alpha1.ModuleDeclaration{
			Name:        fmt.Sprintf("GenModule%d", m),
			Declaration: fmt.Sprintf("src/gen/mod%d.ts", m),
			Location:    v1alpha1.SourceLocation{File: fmt.Sprintf("src/gen/mod%d.ts", m), Line: 1},
		}
		if m > 0 {
			mod.Imports = append(mod.Imports, v1alpha1.TypeRef{
				Name:        fmt.Sprintf("GenModule%d", m-1),
				Declaration: fmt.Sprintf("src/gen/mod%d.ts", m-1),
			})
		}
		mod.Factories = append(mod.Factories,
			v1alpha1.FactoryDecl{
				Name:    fmt.Sprintf("endpoint%d", m),
				Returns: v1alpha1.TypeRef{Name: "string"},
			},
			v1alpha1.FactoryDecl{
				Name:    fmt.Sprintf("client%d", m),
				Returns: v1alpha1.TypeRef{Name: fmt.Sprintf("GenClient%d", m), Declaration: fmt.Sprintf("src/gen/mod%d.ts", m)},
				Params: []v1alpha1.ParamDecl{{
					Name: fmt.Sprintf("endpoint%d", m),
					Type: v1alpha1.TypeRef{Name: "string"},
				}},
			},
		)
		doc.Modules = append(doc.Modules, mod)
	}

	return doc
}

// declOf reverses the naming convention in generate: SvcXLY lives in layer Y.
func declOf(name string) string {
	var layer int
	for i := len(name) - 1; i >= 0; i-- {
		if name[i] == 'L' {
			fmt.Sscanf(name[i+1:], "%d", &layer)
			break
		}
	}
	return fmt.Sprintf("src/gen/l%d.ts", layer)
}
