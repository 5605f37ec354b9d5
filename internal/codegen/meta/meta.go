package meta

// ClassModel holds the structural shape extracted from a plain data class.
// Built once per invocation and treated as read-only by every renderer call.
type ClassModel struct {
	Namespace  string     // dotted namespace the class was declared in
	Name       string     // class identifier
	Properties []Property // non-virtual properties, declaration order
}

// Property is a single name/type pair. The type is the declared type text
// carried verbatim; no resolution or validation is performed.
type Property struct {
	Name string
	Type string
}
