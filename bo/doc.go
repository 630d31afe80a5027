// Package bo contains the BO4E business objects (BO), the top-level
// records exchanged between market partners. Importing the package
// registers every business object and, transitively via com, every
// component with the engine, which is what UnmarshalAny and the schema
// dump rely on.
package bo
