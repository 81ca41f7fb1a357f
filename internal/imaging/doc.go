// Package imaging provides the image I/O and inspection used around the
// watermark compositor.
//
// It loads images from disk (with a path-keyed cache), reports whether an
// image is usable and whether it carries an alpha channel, parses and samples
// colors, and encodes results either to a file or to a base64 PNG preview.
// All operations work with standard Go image.Image types and use a coordinate
// system where (0,0) is at the top-left corner, X increases rightward, and Y
// increases downward.
//
// # Supported Images
//
// Only 8-bit RGB and RGBA images can be watermarked. CheckColorDepth rejects
// grayscale, CMYK, paletted and 16-bit images with a message suitable for
// showing to the user.
//
// # Output Formats
//
// Results are written as PNG or JPEG, chosen by the output file's extension,
// which must be exactly "png" or "jpg".
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. The other functions are
// stateless and do not mutate their inputs.
//
// # Error Handling
//
// Functions return errors for invalid inputs such as:
//   - Coordinates outside image bounds
//   - Malformed colors (ErrInvalidColor)
//   - Output names with an unsupported extension (ErrUnsupportedExtension)
//   - File I/O errors during image loading or saving
package imaging
