package fn

// Keyword is an argument bound by parameter name rather than by position.
type Keyword struct {
	Name  string
	Value any
}

// Kw creates a keyword argument. Keywords may be mixed with positional arguments in
// any call that accepts ...any; their relative order does not matter.
//
//	c.Call(1, fn.Kw("scale", 10))
func Kw(name string, value any) Keyword {
	return Keyword{Name: name, Value: value}
}

// SplitArgs separates keyword arguments from positional ones, keeping the order of
// each. A Keyword value, not a pointer to one, marks a keyword.
func SplitArgs(args []any) (positional []any, keywords []Keyword) {
	for _, a := range args {
		if kw, ok := a.(Keyword); ok {
			keywords = append(keywords, kw)
			continue
		}
		positional = append(positional, a)
	}
	return positional, keywords
}
