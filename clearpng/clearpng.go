package clearpng

import (
	"image"
	"image/png"
	"os"
)

// Convert makes the near-white background of the PNG at
// path transparent and overwrites the file with the result.
//
// It returns the size of the rewritten file in bytes.
func Convert(path string) (int64, error) {
	size, _, err := convertFile(path)
	return size, err
}

// convertFile is like Convert, but also returns the number
// of pixels that were made transparent.
func convertFile(path string) (size int64, cleared int, err error) {
	img, err := ReadImage(path)
	if err != nil {
		return 0, 0, err
	}
	res, cleared := ConvertImage(img)
	if err := WriteImage(path, res); err != nil {
		return 0, 0, err
	}
	info, err := os.Stat(path)
	if err != nil {
		return 0, 0, err
	}
	return info.Size(), cleared, nil
}

// ConvertImage is like Convert, but works on an in-memory
// image and leaves img untouched.
//
// It returns the converted copy and the number of pixels
// that were made transparent.
func ConvertImage(img image.Image) (*image.NRGBA, int) {
	res := ToNRGBA(img)
	return res, MakeBackgroundTransparent(res)
}

// ReadImage decodes the PNG file at path.
//
// If the file is missing, the returned error satisfies
// errors.Is(err, os.ErrNotExist).
func ReadImage(path string) (image.Image, error) {
	r, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	img, err := png.Decode(r)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	return img, nil
}

// WriteImage encodes img as a PNG and writes it to path,
// replacing any existing file.
func WriteImage(path string, img image.Image) (err error) {
	w, err := os.Create(path)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	defer func() {
		if closeErr := w.Close(); closeErr != nil && err == nil {
			err = &WriteError{Path: path, Err: closeErr}
		}
	}()
	enc := png.Encoder{
		CompressionLevel: png.BestCompression,
	}
	if err := enc.Encode(w, img); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}
