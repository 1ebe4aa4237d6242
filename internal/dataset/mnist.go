package dataset

import (
	GoMNIST "github.com/petar/GoMNIST"
	"github.com/pkg/errors"
)

// MNIST image and label sizes.
const (
	MNISTPixels  = 28 * 28
	MNISTClasses = 10
)

// LoadMNIST loads the MNIST training and test sets from dir.
//
// dir must contain the gzipped IDX files published with the dataset:
//   - train-images-idx3-ubyte.gz, train-labels-idx1-ubyte.gz
//   - t10k-images-idx3-ubyte.gz, t10k-labels-idx1-ubyte.gz
//
// Pixels are scaled to [0, 1]; expected outputs are one-hot vectors of
// MNISTClasses values. maxSamples caps each set (0 = load all).
func LoadMNIST(dir string, maxSamples int) (train, test []Sample, err error) {
	trainSet, testSet, err := GoMNIST.Load(dir)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "load MNIST from %s", dir)
	}

	train, err = mnistSamples(trainSet, maxSamples)
	if err != nil {
		return nil, nil, errors.Wrap(err, "training set")
	}
	test, err = mnistSamples(testSet, maxSamples)
	if err != nil {
		return nil, nil, errors.Wrap(err, "test set")
	}
	return train, test, nil
}

func mnistSamples(set *GoMNIST.Set, maxSamples int) ([]Sample, error) {
	if set.NRow*set.NCol != MNISTPixels {
		return nil, errors.Errorf("unexpected image size %dx%d", set.NRow, set.NCol)
	}

	n := set.Count()
	if maxSamples > 0 && n > maxSamples {
		n = maxSamples
	}

	samples := make([]Sample, n)
	for i := range samples {
		image, label := set.Get(i)
		if int(label) >= MNISTClasses {
			return nil, errors.Errorf("label out of range [0, 9] at sample %d: %d", i, label)
		}
		samples[i] = Sample{
			Input:    ScalePixels(image),
			Expected: OneHot(int(label), MNISTClasses),
		}
	}
	return samples, nil
}

// ScalePixels maps 8-bit grey levels to [0, 1].
func ScalePixels(pixels []byte) []float64 {
	out := make([]float64, len(pixels))
	for i, p := range pixels {
		out[i] = float64(p) / 255.0
	}
	return out
}
