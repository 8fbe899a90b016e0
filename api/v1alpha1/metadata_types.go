package v1alpha1

// MetadataKind tags which field of a MetadataValue is meaningful.
type MetadataKind string

const (
	MetadataString     MetadataKind = "string"
	MetadataBool       MetadataKind = "bool"
	MetadataNumber     MetadataKind = "number"
	MetadataStringList MetadataKind = "stringList"
)

// MetadataValue is one annotation argument attached to a declaration.
//
// It is a tagged union rather than an untyped blob so downstream consumers
// (emitter, runtime) get a stable contract. The resolver passes metadata through
// unmodified.
type MetadataValue struct {
	Kind    MetadataKind `json:"kind"`
	Str     string       `json:"str,omitempty"`
	Bool    bool         `json:"bool,omitempty"`
	Num     float64      `json:"num,omitempty"`
	StrList []string     `json:"strList,omitempty"`
}

// Metadata is the open annotation bag carried per component.
type Metadata map[string]MetadataValue

func StringValue(s string) MetadataValue {
	return MetadataValue{Kind: MetadataString, Str: s}
}

func BoolValue(b bool) MetadataValue {
	return MetadataValue{Kind: MetadataBool, Bool: b}
}

func NumberValue(n float64) MetadataValue {
	return MetadataValue{Kind: MetadataNumber, Num: n}
}

func StringListValue(items ...string) MetadataValue {
	return MetadataValue{Kind: MetadataStringList, StrList: items}
}
