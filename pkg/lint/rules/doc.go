// Package rules provides the built-in style rules for gojscs.
//
// # Rule Domains
//
//   - Keywords and statements:
//
//   - disallowKeywords - Listed keywords must not be used
//
//   - requireSpaceAfterKeywords - Listed keywords must be followed by a space
//
//   - requireCurlyBraces - Statement bodies must be blocks
//
//   - Declarations:
//
//   - disallowMultipleVarDecl - One variable per declaration
//
//   - Literals:
//
//   - disallowTrailingComma - No comma after the last element of a literal
//
//   - validateQuoteMarks - Strings use one quote mark
//
//   - Whitespace and layout:
//
//   - disallowTrailingWhitespace - Lines must not end with whitespace
//
//   - disallowMultipleLineBreaks - At most one blank line in a row
//
//   - validateIndentation - Statements are indented one level per block
//
//   - maximumLineLength - Lines are limited in length
//
//   - Identifiers:
//
//   - requireCamelCaseOrUpperCaseIdentifiers - camelCase or UPPER_CASE names
//
// # Presets
//
// The presets directory holds the bundled presets as JSON documents. They
// are registered by RegisterDefaultPresets.
package rules
