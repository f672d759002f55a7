package serd

// Lexical-form datatype IRI strings used internally by the number/boolean
// constructors and by the writer's bare-literal abbreviation rules. The
// public, Node-wrapped equivalents live in the xsd subpackage.
const (
	xsdString   = "http://www.w3.org/2001/XMLSchema#string"
	xsdBoolean  = "http://www.w3.org/2001/XMLSchema#boolean"
	xsdDecimal  = "http://www.w3.org/2001/XMLSchema#decimal"
	xsdInteger  = "http://www.w3.org/2001/XMLSchema#integer"
	xsdDouble   = "http://www.w3.org/2001/XMLSchema#double"
	xsdFloat    = "http://www.w3.org/2001/XMLSchema#float"
	xsdBase64   = "http://www.w3.org/2001/XMLSchema#base64Binary"
	xsdDateTime = "http://www.w3.org/2001/XMLSchema#dateTime"

	rdfType = "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"
	rdfFirst = "http://www.w3.org/1999/02/22-rdf-syntax-ns#first"
	rdfRest  = "http://www.w3.org/1999/02/22-rdf-syntax-ns#rest"
	rdfNil   = "http://www.w3.org/1999/02/22-rdf-syntax-ns#nil"
)

func isBareableDatatype(dt string) bool {
	switch dt {
	case xsdBoolean, xsdInteger, xsdDecimal:
		return true
	default:
		return false
	}
}
