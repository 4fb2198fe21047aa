// Package resolver turns raw contract failure traces into human-readable
// messages.
//
// Resolution starts by extracting the address of the innermost contract
// frame from the trace and identifying the contract through a Registry. The
// trace is then handed to an ordered list of stages, each a pure function
// over Params. The default stages try, in order of decreasing specificity:
//
//  1. the matcher table of the failing project contract
//  2. the tables of the interfaces the contract implements, in list order
//  3. the global default table
//  4. the raw trace itself
//
// Stages are combined so that once a stage sets Context.Result every
// remaining stage is skipped.
//
// Basic usage:
//
//	reg, err := registry.Load(ctx, fsys)
//	if err != nil {
//	    return err
//	}
//
//	r := resolver.New(reg)
//	resp, err := r.FormatError(raw, resolver.Call{
//	    ContractAddress: "0x0123...",
//	    Entrypoint:      "swap",
//	})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(resp.Result)
//
// Errors:
//
// FormatError fails with CodeInvalidInput when the trace is empty and with
// CodeMissingAddress when it names no contract. A matcher table holding a
// broken pattern fails with CodePatternInvalid, and a typed extractor that
// cannot coerce its capture fails with CodeCoercionFailed.
//
// A Resolver holds no mutable state and is safe for concurrent use.
package resolver
