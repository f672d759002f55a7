// Package xsd exports Node values for the XML Schema built-in datatypes
// used to tag RDF literals.
package xsd

import "github.com/knakk/serd"

// The XML schema built-in datatypes (xsd):
// https://www.w3.org/TR/xmlschema-2/#built-in-datatypes
var (
	// Core types:

	String  = serd.NewIRI("http://www.w3.org/2001/XMLSchema#string")
	Boolean = serd.NewIRI("http://www.w3.org/2001/XMLSchema#boolean")
	Decimal = serd.NewIRI("http://www.w3.org/2001/XMLSchema#decimal")
	Integer = serd.NewIRI("http://www.w3.org/2001/XMLSchema#integer")

	// IEEE floating-point numbers:

	Double = serd.NewIRI("http://www.w3.org/2001/XMLSchema#double")
	Float  = serd.NewIRI("http://www.w3.org/2001/XMLSchema#float")

	// Time and date:

	Date          = serd.NewIRI("http://www.w3.org/2001/XMLSchema#date")
	Time          = serd.NewIRI("http://www.w3.org/2001/XMLSchema#time")
	DateTime      = serd.NewIRI("http://www.w3.org/2001/XMLSchema#dateTime")
	DateTimeStamp = serd.NewIRI("http://www.w3.org/2001/XMLSchema#dateTimeStamp")

	// Recurring and partial dates:

	Year              = serd.NewIRI("http://www.w3.org/2001/XMLSchema#gYear")
	Month             = serd.NewIRI("http://www.w3.org/2001/XMLSchema#gMonth")
	Day               = serd.NewIRI("http://www.w3.org/2001/XMLSchema#gDay")
	YearMonth         = serd.NewIRI("http://www.w3.org/2001/XMLSchema#gYearMonth")
	Duration          = serd.NewIRI("http://www.w3.org/2001/XMLSchema#duration")
	YearMonthDuration = serd.NewIRI("http://www.w3.org/2001/XMLSchema#yearMonthDuration")
	DayTimeDuration   = serd.NewIRI("http://www.w3.org/2001/XMLSchema#dayTimeDuration")

	// Encoded binary data:

	Base64Binary = serd.NewIRI("http://www.w3.org/2001/XMLSchema#base64Binary")
	HexBinary    = serd.NewIRI("http://www.w3.org/2001/XMLSchema#hexBinary")

	// Limited-range integer numbers:

	Long  = serd.NewIRI("http://www.w3.org/2001/XMLSchema#long")
	Int   = serd.NewIRI("http://www.w3.org/2001/XMLSchema#int")
	Short = serd.NewIRI("http://www.w3.org/2001/XMLSchema#short")
	Byte  = serd.NewIRI("http://www.w3.org/2001/XMLSchema#byte")
)

// RDFLangString is rdf:langString, the implicit datatype of any
// language-tagged literal.
var RDFLangString = serd.NewIRI("http://www.w3.org/1999/02/22-rdf-syntax-ns#langString")

// RDFType is rdf:type, the predicate abbreviated by the bareword "a" in
// the terse syntaxes.
var RDFType = serd.NewIRI("http://www.w3.org/1999/02/22-rdf-syntax-ns#type")
