// Package ingest reads interaction edge lists into core.Graph.
//
// Input is delimited text with a header row and at least three columns:
//
//	protein_a,protein_b,score
//	P04637,Q00987,999
//
// Rows naming the unknown sentinel on either side are dropped, as are rows
// whose score is below MinScore. Any other row that cannot be parsed aborts
// the load with ErrMalformedRow and its 1-based line number.
//
// LoadMapping reads an identifier translation table (for example STRING to
// UniProt) which Load can apply before filtering; identifiers with no mapping
// become the unknown sentinel.
package ingest
