// SPDX-License-Identifier: MIT

// Package report renders computor results for people and for machines.
//
// Formats:
//   - FormatText: the classic wording ("Reduced form: ...",
//     "Polynomial degree: N", "Discriminant is strictly positive, ...").
//   - FormatJSON: an indented JSON array of Document values.
//   - FormatYAML: a YAML stream, one Document per equation.
//
// Failed equations are rendered too: text mode prints the reduced form and
// degree carried by an unsupported-degree error; structured formats set the
// Document's error field.
package report
