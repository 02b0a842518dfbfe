package layer

// Kind identifies the content type of a layer.
type Kind uint8

const (
	KindNull Kind = iota
	KindSolid
	KindText
	KindShape
	KindImage
	KindComposition
)

var kindNames = [...]string{
	KindNull:        "null",
	KindSolid:       "solid",
	KindText:        "text",
	KindShape:       "shape",
	KindImage:       "image",
	KindComposition: "composition",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// ParseKind returns the kind with the given name.
func ParseKind(s string) (Kind, bool) {
	for i, name := range kindNames {
		if name == s {
			return Kind(i), true
		}
	}
	return KindNull, false
}
