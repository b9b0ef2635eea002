// Package digest contains the fixed-width hash output type shared by the
// tree builder and the proof machinery. The raw byte form is the canonical
// representation; the hex form exists for printing and for comparing against
// externally supplied root strings.
package digest
