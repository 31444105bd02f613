// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// MixChannels maps interleaved pcm with srcChannels channels to the requested layout.
//
// requested == 0 keeps the source channel count. A smaller count keeps the
// first requested channels. With mono set, the selected channels are averaged
// into one; mono with requested == 1 is rejected.
func MixChannels(pcm []float32, srcChannels, requested int, mono bool) ([]float32, int, error) {
	if srcChannels <= 0 {
		return nil, 0, fmt.Errorf("%w: source has %d channels", ErrInvalidChannelCount, srcChannels)
	}
	if requested < 0 {
		return nil, 0, fmt.Errorf("%w: requested %d channels", ErrInvalidChannelCount, requested)
	}
	if mono && requested == 1 {
		return nil, 0, fmt.Errorf("%w: %w: mono conversion needs more than one channel to average", ErrInvalidArguments, ErrInvalidChannelCount)
	}
	if requested > srcChannels {
		return nil, 0, fmt.Errorf("%w: requested %d channels from a %d channel source", ErrInvalidChannelCount, requested, srcChannels)
	}

	n := srcChannels
	if requested > 0 {
		n = requested
	}

	if mono {
		return downmix(pcm, srcChannels, n), 1, nil
	}

	if n == srcChannels {
		return pcm, srcChannels, nil
	}

	out, err := SelectChannels(pcm, srcChannels, n)
	if err != nil {
		return nil, 0, err
	}

	return out, n, nil
}

// SelectChannels keeps the first n channels of every frame.
func SelectChannels(pcm []float32, channels, n int) ([]float32, error) {
	if channels <= 0 || n <= 0 || n > channels {
		return nil, fmt.Errorf("%w: cannot select %d of %d channels", ErrInvalidChannelCount, n, channels)
	}
	if n == channels {
		return pcm, nil
	}

	frames := len(pcm) / channels
	out := make([]float32, frames*n)
	for f := range frames {
		copy(out[f*n:(f+1)*n], pcm[f*channels:f*channels+n])
	}

	return out, nil
}

// DownmixMono averages all channels of every frame into one.
func DownmixMono(pcm []float32, channels int) []float32 {
	if channels <= 0 {
		return nil
	}

	return downmix(pcm, channels, channels)
}

// downmix averages the first n of channels per frame.
func downmix(pcm []float32, channels, n int) []float32 {
	frames := len(pcm) / channels
	dst := make([]float32, frames)

	if n == 1 {
		for f := range frames {
			dst[f] = pcm[f*channels]
		}
		return dst
	}

	invChannels := float32(1.0) / float32(n)

	switch {
	case n == 2 && channels == 2:
		for f := range frames {
			idx := f << 1
			dst[f] = (pcm[idx] + pcm[idx+1]) * 0.5
		}
	case n == 4 && channels == 4:
		for f := range frames {
			idx := f << 2
			sum := pcm[idx] + pcm[idx+1] + pcm[idx+2] + pcm[idx+3]
			dst[f] = sum * 0.25
		}
	default:
		for f := range frames {
			sum := float32(0)
			baseIdx := f * channels
			for c := range n {
				sum += pcm[baseIdx+c]
			}
			dst[f] = sum * invChannels
		}
	}

	return dst
}
