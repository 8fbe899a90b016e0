package token

// primitives are built-in scalar type names that can never stand alone as a
// constructor or field dependency. Their only legitimate appearance is as a
// factory-method return type, where the output is keyed by the method's name.
var primitives = map[string]struct{}{
	"string":  {},
	"number":  {},
	"boolean": {},
	"bool":    {},
	"int":     {},
	"int32":   {},
	"int64":   {},
	"float":   {},
	"float32": {},
	"float64": {},
	"double":  {},
	"long":    {},
	"short":   {},
	"byte":    {},
	"char":    {},
	"bigint":  {},
	"symbol":  {},
}

// IsPrimitive reports whether name is a built-in scalar type name.
func IsPrimitive(name string) bool {
	_, ok := primitives[name]
	return ok
}
