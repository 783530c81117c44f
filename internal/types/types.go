package types

// Argument holds one extracted parameter from a def header or __init__.
// Variadic markers (* / **) are kept as part of Name so the argument
// round-trips to source-like text without extra flags.
type Argument struct {
	Name           string `json:"name"`
	TypeAnnotation string `json:"type_annotation,omitempty"`
}

// Function holds an extracted top-level function signature.
// Arguments preserve declaration order.
type Function struct {
	Name      string     `json:"name"`
	Arguments []Argument `json:"arguments,omitempty"`
}

// Class holds an extracted top-level class definition.
// BaseClasses is empty (never nil) when the class has no inheritance list.
// ConstructorArguments includes the leading self parameter as written;
// callers that want it hidden filter it themselves.
type Class struct {
	Name                 string     `json:"name"`
	BaseClasses          []string   `json:"base_classes"`
	ConstructorArguments []Argument `json:"constructor_arguments,omitempty"`
}

// GlobalVariable holds an extracted module-level assignment.
// ValueExpression is the raw trimmed right-hand side; it is never evaluated.
type GlobalVariable struct {
	Name            string `json:"name"`
	TypeAnnotation  string `json:"type_annotation,omitempty"`
	ValueExpression string `json:"value_expression"`
}

// FileScanResult is the aggregate of all three scan passes over one file.
type FileScanResult struct {
	FilePath     string           `json:"file_path"`
	RelativePath string           `json:"relative_path,omitempty"`
	Functions    []Function       `json:"functions,omitempty"`
	Classes      []Class          `json:"classes,omitempty"`
	Globals      []GlobalVariable `json:"globals,omitempty"`
	TotalLines   int              `json:"total_lines"`
}
