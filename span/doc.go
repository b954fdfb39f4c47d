// Package span computes per-axis spans (max minus min) over rectangular
// numeric tables backed by a gota DataFrame.
//
// ReduceSpan is the recommended entry point: it performs two whole-table
// bulk reductions (a columnar or row-wise max and min) and subtracts them
// element-wise. SpanByApply computes the same mapping by dispatching a
// callback once per column or row through the DataFrame's Capply/Rapply
// machinery; it exists as a baseline to measure against, and is noticeably
// slower on the Rows axis because every dispatch assembles a fresh row view
// from column-major storage. Both variants return identical values.
//
// Missing values are represented as NaN throughout and are skipped by the
// reductions; a label whose slice holds no valid value yields NaN in the
// result rather than failing the call.
package span
