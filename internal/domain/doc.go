// Package domain contains the core model for querylab: the records held by the
// object store, the report produced by a lab run and the error taxonomy.
//
// The domain is storage- and presentation-agnostic: it does not depend on YAML
// parsing, the terminal or the filesystem. Infra/adapters map into/from these types.
package domain
