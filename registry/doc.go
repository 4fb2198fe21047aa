// Package registry indexes dapp projects, their contracts, and the matcher
// tables used to resolve contract failures.
//
// A Registry is built once, either from values with New or from a repository
// on disk with Load, and is read-only afterwards. Contract addresses are
// indexed in normalized form, so lookups accept any casing or zero padding.
//
// Repository layout:
//
//	<id>/metadata.json           project metadata (required)
//	<id>/icon.<ext>              project icon (required)
//	<id>/cover.<ext>             project cover (required)
//	<id>/errors.json             contract tag -> matcher table (optional)
//	errors-interfaces.json       interface -> matcher table (optional)
//	errors-default.json          global matcher table (optional)
//
// Assets may use the png, jpg, jpeg, svg, or webp extension. Every JSON
// document is validated against the embedded schema before it is decoded,
// and every matcher is checked for placeholder and pattern consistency.
package registry
