// Package registry loads the known module and global types from YAML.
//
// A registry file names reusable shapes and maps module specifiers and
// global names to type expressions:
//
//	version: "1"
//	types:
//	  Datasource:
//	    object:
//	      fields:
//	        url: string
//	modules:
//	  pkg:
//	    object:
//	      fields:
//	        Foo: {function: {args: [number], result: string}}
//	globals:
//	  api:
//	    object:
//	      fields:
//	        setDatasource: {function: {args: [{ref: Datasource}], result: undefined}}
//
// # Type expressions
//
// A type expression is either a scalar name or a single-key mapping:
//
//   - number, string, boolean, bigint, symbol, null, undefined (or void), any
//   - {array: T}
//   - {tuple: {elements: [T...], rest: T}}
//   - {object: {fields: {key: T...}, rest: T}}, field order is kept
//   - {function: {args: [T...], rest: T, result: T}}
//   - {union: [T...]} and {intersection: [T...]}
//   - {ref: Name} for a shape declared under types
//
// A ref that reaches itself is an error: shapes are finite values.
//
// Key types:
//   - File: one parsed registry file
//   - TypeExpr: one type expression
//   - Table: an ordered name to type expression mapping
package registry
