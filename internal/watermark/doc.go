// Package watermark blends a watermark image onto a base image.
//
// The single entry point is Compose. Every output pixel is derived
// independently from the base pixel at the same coordinate and, when the
// placement covers that coordinate, the matching watermark pixel:
//
//	out.c = (opacity*w.c + (100-opacity)*i.c) / 100
//
// using truncating integer division per channel. Whether a covered pixel is
// blended at all is decided by the transparency Mode:
//
//   - AlphaBlend: blend only when the watermark pixel is fully opaque (A == 255).
//     Partial alpha is treated as transparent; there is no alpha-weighted blend.
//   - ChromaKey: blend unless the watermark RGB equals the key exactly.
//   - Opaque: always blend.
//
// # Placement
//
// Single puts the watermark's top-left corner at a fixed position; pixels
// outside that window pass through unchanged. Tiled repeats the watermark
// from (0,0) so every base pixel is covered.
//
// # Coordinates
//
// Coordinates are relative to each image's Bounds().Min, so images with a
// non-zero origin behave exactly like their zero-origin copies.
//
// # Concurrency
//
// Compose splits the base image into row ranges and processes them in
// parallel. Inputs are never mutated and each output row is written by one
// worker only.
package watermark
