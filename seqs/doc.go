/*
Package seqs provides lazy, composable transformations over Go 1.23+ iterators (iter.Seq).

Every transformer is demand-driven: building a pipeline performs no work, elements are
produced only as the consumer ranges over the result, and a consumer that stops ranging
halts every upstream stage. Nothing runs in the background.

The package includes:

  - **Protocol**: [Iterator] (single-step pulling with lookahead), [Once], [Of], [FromNext].
  - **Transformations**: [Map], [Filter], [FlatMap], [Zip], [Accumulate], [Interpose], etc.
  - **Windowing & Ordering**: [SlidingWindow], [Window], [Partition], [Interleave],
    [MergeSorted], [Unique], [Take], [Drop], [Tail].
  - **Split-Apply-Combine**: [GroupBy] materializes groups, [ReduceBy] folds them
    incrementally in O(distinct keys) memory.
  - **Join**: [Join] is a semi-streaming inner equi-join.

# Single-pass sequences

An iter.Seq backed by a slice can be ranged over many times. Sequences reading from
files, channels or sockets usually cannot, and [Once] gives any sequence that behavior:
the second traversal yields nothing. A single-pass sequence must have one owner; two
stages pulling from it at the same time is a usage error that is not detected.

# Memory

[GroupBy], [Unique], [Frequencies] and the left side of [Join] keep state proportional to
the input or to its distinct keys. Do not feed them unbounded high-cardinality input.

	// Stream purchases against an in-memory customer table.
	for p := range seqs.Join(customerID, slices.Values(customers), purchaseCustomer, purchases) {
		fmt.Println(p.V1.Name, p.V2.Amount)
	}

# Error Handling

Invalid arguments (for example a window size below one) are reported by the constructor
through errors wrapping the sentinels in errors.go. Exhaustion is never an error.
Functions with a "Try" prefix (e.g., [TryMap], [TryFilter]) yield (value, error) pairs.
*/
package seqs
