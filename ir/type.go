package ir

import "fmt"

type Type int

const (
	NullType Type = iota
	BoolType
	IntegerType
	RealType
	StringType
	ArrayType
	DictType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		NullType:    "Null",
		BoolType:    "Bool",
		IntegerType: "Integer",
		RealType:    "Real",
		StringType:  "String",
		ArrayType:   "Array",
		DictType:    "Dict",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Null":    NullType,
		"Bool":    BoolType,
		"Integer": IntegerType,
		"Real":    RealType,
		"String":  StringType,
		"Array":   ArrayType,
		"Dict":    DictType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		NullType,
		BoolType,
		IntegerType,
		RealType,
		StringType,
		ArrayType,
		DictType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case ArrayType, DictType:
		return false
	default:
		return true
	}
}
