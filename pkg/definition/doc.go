// Package definition loads declarative form definitions from YAML or JSON
// documents and turns them into rule sets. Definitions are the file-based
// counterpart to building a rules.Set in code: tooling and the CLI use them,
// the engine itself never reads files.
package definition
