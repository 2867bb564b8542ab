// Package codec provides streaming compression for clusty's input and output tables.
//
// Sequence-similarity distance tables routinely ship gzip- or zstd-compressed
// because they hold tens to hundreds of millions of rows; assignment tables
// are written through the same streaming abstraction so large clusterings
// don't need to be buffered in memory to compress them.
//
// Unlike a payload codec that compresses an already-materialized in-memory
// blob, every implementation here wraps an io.Reader/io.Writer so the loader
// pipeline of the graph package can stream arbitrarily large files through
// bounded buffers without holding a compressed copy in memory.
//
// # Supported algorithms
//
//   - None: passthrough, for uncompressed tables
//   - Gzip: ubiquitous interop format for compressed input distance tables
//   - Zstd: best compression ratio; pure Go by default (github.com/klauspost/compress/zstd),
//     a cgo-accelerated path (github.com/valyala/gozstd) is used when built with cgo enabled
//   - S2: Snappy-family, fast with good ratio (github.com/klauspost/compress/s2)
//   - LZ4: very fast decompression, used for downstream-pipeline-friendly output (github.com/pierrec/lz4/v4)
package codec
