package goldenmesh

import (
	"image"
)

// prng is a Park-Miller minimal standard pseudo random number generator.
type prng struct {
	a         int
	m         int
	randomNum int
	div       float64
}

func newPrng() *prng {
	return &prng{
		a:         16807,
		m:         0x7fffffff,
		randomNum: 1,
		div:       1.0 / 0x7fffffff,
	}
}

// Grain applies a film grain over the image, like adobe's grain filter.
// The grain pattern only depends on the image size, so the same frame always gets the same grain.
func Grain(amount int, src image.Image) *image.NRGBA {
	img := ImgToNRGBA(src)
	dst := image.NewNRGBA(img.Bounds())
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	rnd := newPrng()

	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			noise := (rnd.randomSeed() - 0.1) * float64(amount)
			i := img.PixOffset(x, y)
			rf, gf, bf := float64(img.Pix[i]), float64(img.Pix[i+1]), float64(img.Pix[i+2])

			dst.Pix[i+0] = uint8(Clamp(rf+noise, 0, 255))
			dst.Pix[i+1] = uint8(Clamp(gf+noise, 0, 255))
			dst.Pix[i+2] = uint8(Clamp(bf+noise, 0, 255))
			dst.Pix[i+3] = img.Pix[i+3]
		}
	}
	return dst
}

func (prng *prng) nextLongRand(seed int) int {
	lo := prng.a * (seed & 0xffff)
	hi := prng.a * (seed >> 16)
	lo += (hi & 0x7fff) << 16

	if lo > prng.m {
		lo &= prng.m
		lo++
	}
	lo += hi >> 15
	if lo > prng.m {
		lo &= prng.m
		lo++
	}
	return lo
}

func (prng *prng) randomSeed() float64 {
	prng.randomNum = prng.nextLongRand(prng.randomNum)
	return float64(prng.randomNum) * prng.div
}
