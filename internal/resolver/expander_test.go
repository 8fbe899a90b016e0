package resolver

import (
	"strings"
	"testing"

	"github.com/anvil-platform/wireplan/api/v1alpha1"
	"github.com/anvil-platform/wireplan/internal/diag"
)

func mod(name string, imports []string, factories ...v1alpha1.FactoryDecl) v1alpha1.ModuleDeclaration {
	decl := v1alpha1.ModuleDeclaration{
		Name:        name,
		Declaration: declFile(name),
		Location:    v1alpha1.SourceLocation{File: declFile(name), Line: 1},
		Factories:   factories,
	}
	for _, imp := range imports {
		decl.Imports = append(decl.Imports, ref(imp))
	}
	return decl
}

func factory(name string, returns v1alpha1.TypeRef, params ...v1alpha1.ParamDecl) v1alpha1.FactoryDecl {
	return v1alpha1.FactoryDecl{
		Name:     name,
		Returns:  returns,
		Params:   params,
		Location: v1alpha1.SourceLocation{File: "src/modules.ts", Line: 10},
	}
}

func TestExpander_ModuleInstanceIsDependencyZero(t *testing.T) {
	plan := resolvePlan(t, Input{
		Components: []v1alpha1.ComponentDeclaration{comp("Config")},
		Modules: []v1alpha1.ModuleDeclaration{
			mod("InfraModule", nil,
				factory("createPool", ref("Pool"), v1alpha1.ParamDecl{Name: "cfg", Type: ref("Config")}),
			),
		},
	})

	pool := plan.Components[position(t, plan, "Pool")]
	if len(pool.Dependencies) != 2 {
		t.Fatalf("expected module dep plus one param, got %+v", pool.Dependencies)
	}
	if pool.Dependencies[0].Token.Name != "InfraModule" {
		t.Fatalf("dependency zero must be the grouping instance, got %+v", pool.Dependencies[0].Token)
	}
	if pool.Provenance.Module != "InfraModule" || pool.Provenance.Factory != "createPool" {
		t.Fatalf("bad provenance: %+v", pool.Provenance)
	}
	if !(position(t, plan, "InfraModule") < position(t, plan, "Pool")) {
		t.Fatalf("grouping must precede its factories: %v", planNames(plan))
	}
}

func TestExpander_DiamondImportExpandsOnce(t *testing.T) {
	plan := resolvePlan(t, Input{Modules: []v1alpha1.ModuleDeclaration{
		mod("A", []string{"B", "C"}),
		mod("B", []string{"D"}),
		mod("C", []string{"D"}),
		mod("D", nil, factory("createCore", ref("Core"))),
	}})

	core := 0
	dmod := 0
	for _, c := range plan.Components {
		switch c.DisplayName() {
		case "Core":
			core++
		case "D":
			dmod++
		}
	}
	if core != 1 || dmod != 1 {
		t.Fatalf("diamond-imported grouping must expand once: %v", planNames(plan))
	}
	if !(position(t, plan, "D") < position(t, plan, "B") && position(t, plan, "D") < position(t, plan, "C")) {
		t.Fatalf("imported grouping must expand before importers: %v", planNames(plan))
	}
	if !(position(t, plan, "B") < position(t, plan, "A") && position(t, plan, "C") < position(t, plan, "A")) {
		t.Fatalf("imported grouping must expand before importers: %v", planNames(plan))
	}
}

func TestExpander_ImportCycleFatal(t *testing.T) {
	d := resolveErr(t, Input{Modules: []v1alpha1.ModuleDeclaration{
		mod("A", []string{"B"}),
		mod("B", []string{"A"}),
	}})

	if d.Kind != diag.KindCircularDependency {
		t.Fatalf("expected CircularDependency, got %s", d.Kind)
	}
	if len(d.Path) != 3 || d.Path[0] != "A" || d.Path[1] != "B" || d.Path[2] != "A" {
		t.Fatalf("expected grouping names in cycle order, got %v", d.Path)
	}
	if !strings.Contains(d.Message, "grouping") {
		t.Fatalf("grouping cycle should be distinct from component cycle: %q", d.Message)
	}
}

func TestExpander_UnresolvableImportWarnsAndSkips(t *testing.T) {
	plan := resolvePlan(t, Input{Modules: []v1alpha1.ModuleDeclaration{
		mod("A", []string{"Ghost"}),
	}})

	if len(plan.Warnings) != 1 || !strings.Contains(plan.Warnings[0], "Ghost") {
		t.Fatalf("expected one warning naming the import, got %v", plan.Warnings)
	}
	a := plan.Components[position(t, plan, "A")]
	if len(a.Dependencies) != 0 {
		t.Fatalf("skipped import must not leave a dependency: %+v", a.Dependencies)
	}
}

func TestExpander_PrimitiveReturnKeyedByMethodName(t *testing.T) {
	plan := resolvePlan(t, Input{Modules: []v1alpha1.ModuleDeclaration{
		mod("M", nil, factory("apiUrl", v1alpha1.TypeRef{Name: "string"})),
	}})

	c := plan.Components[position(t, plan, "apiUrl")]
	if c.Token.Kind != v1alpha1.TokenSynthetic || c.Token.Key != "apiUrl" {
		t.Fatalf("primitive factory output must be keyed by method name: %+v", c.Token)
	}
}

func TestExpander_OpaqueReturnKeyedByMethodName(t *testing.T) {
	plan := resolvePlan(t, Input{Modules: []v1alpha1.ModuleDeclaration{
		mod("M", nil, factory("makeLogger", v1alpha1.TypeRef{Name: "Logger"})),
	}})

	c := plan.Components[position(t, plan, "makeLogger")]
	if c.Token.Kind != v1alpha1.TokenSynthetic || c.Token.Key != "makeLogger" {
		t.Fatalf("interface-typed factory output must be keyed by method name: %+v", c.Token)
	}
}

func TestExpander_PrimitiveParamWiredByNameMatch(t *testing.T) {
	plan := resolvePlan(t, Input{Modules: []v1alpha1.ModuleDeclaration{
		mod("M", nil,
			factory("apiUrl", v1alpha1.TypeRef{Name: "string"}),
			factory("adminUrl", v1alpha1.TypeRef{Name: "string"}),
			factory("makeClient", ref("Client"),
				v1alpha1.ParamDecl{Name: "apiUrl", Type: v1alpha1.TypeRef{Name: "string"}}),
		),
	}})

	client := plan.Components[position(t, plan, "Client")]
	if got := client.Dependencies[1].Token.Key; got != "apiUrl" {
		t.Fatalf("expected name-matched wiring to apiUrl, got %q", got)
	}
	if !(position(t, plan, "apiUrl") < position(t, plan, "Client")) {
		t.Fatalf("primitive provider must precede consumer: %v", planNames(plan))
	}
}

func TestExpander_PrimitiveParamSoleCandidateWins(t *testing.T) {
	plan := resolvePlan(t, Input{Modules: []v1alpha1.ModuleDeclaration{
		mod("M", nil,
			factory("listenPort", v1alpha1.TypeRef{Name: "number"}),
			factory("makeServer", ref("Server"),
				v1alpha1.ParamDecl{Name: "port", Type: v1alpha1.TypeRef{Name: "number"}}),
		),
	}})

	server := plan.Components[position(t, plan, "Server")]
	if got := server.Dependencies[1].Token.Key; got != "listenPort" {
		t.Fatalf("expected sole-candidate wiring to listenPort, got %q", got)
	}
}

func TestExpander_PrimitiveParamAmbiguousFatal(t *testing.T) {
	d := resolveErr(t, Input{Modules: []v1alpha1.ModuleDeclaration{
		mod("M", nil,
			factory("apiUrl", v1alpha1.TypeRef{Name: "string"}),
			factory("adminUrl", v1alpha1.TypeRef{Name: "string"}),
			factory("makeClient", ref("Client"),
				v1alpha1.ParamDecl{Name: "url", Type: v1alpha1.TypeRef{Name: "string"}}),
		),
	}})

	if d.Kind != diag.KindUnresolvableType {
		t.Fatalf("expected UnresolvableType, got %s", d.Kind)
	}
	if len(d.Candidates) != 2 {
		t.Fatalf("expected both producing methods named, got %v", d.Candidates)
	}
	if !strings.Contains(d.Hint, "rename") {
		t.Fatalf("hint should suggest renaming the parameter: %q", d.Hint)
	}
}

func TestExpander_PrimitiveParamNoCandidateFallsToNamedPass(t *testing.T) {
	cfg := comp("Cfg")
	cfg.Qualifier = "apiUrl"

	plan := resolvePlan(t, Input{
		Components: []v1alpha1.ComponentDeclaration{cfg},
		Modules: []v1alpha1.ModuleDeclaration{
			mod("M", nil,
				factory("makeClient", ref("Client"),
					v1alpha1.ParamDecl{Name: "apiUrl", Type: v1alpha1.TypeRef{Name: "string"}}),
			),
		},
	})

	client := plan.Components[position(t, plan, "Client")]
	if client.Dependencies[1].Token.Name != "Cfg" {
		t.Fatalf("placeholder should resolve through the named pass: %+v", client.Dependencies[1].Token)
	}
}

func TestExpander_ParameterizedFactoryProvidesSharedToken(t *testing.T) {
	userRepo := v1alpha1.TypeRef{Name: "Repository", Args: []v1alpha1.TypeRef{ref("User")}}

	app := comp("App")
	app.Params = append(app.Params, v1alpha1.ParamDecl{Name: "repo", Type: userRepo})

	plan := resolvePlan(t, Input{
		Components: []v1alpha1.ComponentDeclaration{app},
		Modules: []v1alpha1.ModuleDeclaration{
			mod("RepoModule", nil, factory("userRepo", userRepo)),
		},
	})

	repo := plan.Components[position(t, plan, "Repository<User>")]
	if repo.Token.Kind != v1alpha1.TokenSynthetic {
		t.Fatalf("parameterized output must be synthetic: %+v", repo.Token)
	}
	if hint, ok := repo.TypeHints["User"]; !ok || hint != declFile("User") {
		t.Fatalf("type hints must record argument declarations: %+v", repo.TypeHints)
	}
	if !(position(t, plan, "Repository<User>") < position(t, plan, "App")) {
		t.Fatalf("provider must precede dependent: %v", planNames(plan))
	}
}
