package perch

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/avesong/perch-go/internal/conf"
	"github.com/avesong/perch-go/internal/errors"
	tflite "github.com/tphakala/go-tflite"
	"github.com/tphakala/go-tflite/delegates/xnnpack"
)

// ErrModelUnavailable indicates the classifier model could not be loaded.
// Without a model no file can be processed, so this is fatal for a whole
// batch and surfaced before any work begins.
var ErrModelUnavailable = errors.NewStd("perch model is not available")

// Perch runs the Perch bird-vocalization TFLite model. The serving signature
// of the model takes a single window per invocation, so Predict loops over
// the batch while holding the interpreter lock.
type Perch struct {
	interpreter *tflite.Interpreter
	model       *tflite.Model
	numClasses  int
	mu          sync.Mutex
}

// Perch implements the Classifier contract. Location metadata is accepted
// but unused: the v1 model is not location-conditioned.
var (
	_ Classifier    = (*Perch)(nil)
	_ LocationAware = (*Perch)(nil)
)

// New loads the TFLite model from cfg.ModelPath and prepares an interpreter.
func New(cfg *conf.PerchConfig) (*Perch, error) {
	if cfg == nil || cfg.ModelPath == "" {
		return nil, errors.New(fmt.Errorf("%w: no model path configured", ErrModelUnavailable)).
			Component("perch").
			Category(errors.CategoryModelInit).
			Build()
	}

	model := tflite.NewModelFromFile(cfg.ModelPath)
	if model == nil {
		return nil, errors.New(fmt.Errorf("%w: cannot load TensorFlow Lite model", ErrModelUnavailable)).
			Component("perch").
			Category(errors.CategoryModelLoad).
			Context("model_path", cfg.ModelPath).
			Build()
	}

	options := tflite.NewInterpreterOptions()

	log := getLogger()
	if cfg.UseXNNPACK {
		delegate := xnnpack.New(xnnpack.DelegateOptions{NumThreads: int32(max(1, runtime.NumCPU()-1))}) //nolint:gosec // G115: thread count bounded by CPU count, safe conversion
		if delegate == nil {
			log.Warn("Failed to create XNNPACK delegate, falling back to default CPU")
			options.SetNumThread(runtime.NumCPU())
		} else {
			options.AddDelegate(delegate)
			options.SetNumThread(1)
		}
	} else {
		options.SetNumThread(runtime.NumCPU())
	}

	interpreter := tflite.NewInterpreter(model, options)
	if interpreter == nil {
		model.Delete()
		return nil, errors.New(fmt.Errorf("%w: cannot create interpreter", ErrModelUnavailable)).
			Component("perch").
			Category(errors.CategoryModelInit).
			Context("model_path", cfg.ModelPath).
			Build()
	}
	if status := interpreter.AllocateTensors(); status != tflite.OK {
		interpreter.Delete()
		model.Delete()
		return nil, errors.New(fmt.Errorf("%w: tensor allocation failed", ErrModelUnavailable)).
			Component("perch").
			Category(errors.CategoryModelInit).
			Context("model_path", cfg.ModelPath).
			Build()
	}

	outputTensor := interpreter.GetOutputTensor(0)
	if outputTensor == nil {
		interpreter.Delete()
		model.Delete()
		return nil, errors.New(fmt.Errorf("%w: cannot get output tensor", ErrModelUnavailable)).
			Component("perch").
			Category(errors.CategoryModelInit).
			Build()
	}
	numClasses := outputTensor.Dim(outputTensor.NumDims() - 1)

	log.Info("Perch model initialized",
		"model_path", cfg.ModelPath,
		"classes", numClasses)

	return &Perch{
		interpreter: interpreter,
		model:       model,
		numClasses:  numClasses,
	}, nil
}

// NumClasses returns the width of the model's output layer.
func (p *Perch) NumClasses() int {
	return p.numClasses
}

// Predict runs one forward pass per window and returns raw per-class scores
// in input order.
func (p *Perch) Predict(batch [][]float32) ([][]float32, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	scores := make([][]float32, 0, len(batch))
	for i, window := range batch {
		inputTensor := p.interpreter.GetInputTensor(0)
		if inputTensor == nil {
			return nil, inferenceError(fmt.Errorf("cannot get input tensor"), i)
		}

		input := inputTensor.Float32s()
		if len(window) != len(input) {
			return nil, inferenceError(fmt.Errorf("window length %d does not match model input length %d", len(window), len(input)), i)
		}
		copy(input, window)

		if status := p.interpreter.Invoke(); status != tflite.OK {
			return nil, inferenceError(fmt.Errorf("tensor invoke failed: %v", status), i)
		}

		outputTensor := p.interpreter.GetOutputTensor(0)
		if outputTensor == nil {
			return nil, inferenceError(fmt.Errorf("cannot get output tensor"), i)
		}

		row := make([]float32, p.numClasses)
		copy(row, outputTensor.Float32s())
		scores = append(scores, row)
	}

	return scores, nil
}

// SetLocation accepts recording site metadata. The v1 Perch model has no
// location or date conditioning, so this only records the fact.
func (p *Perch) SetLocation(latitude, longitude float64, date time.Time) {
	getLogger().Debug("location metadata ignored, model is not location-conditioned",
		"latitude", latitude,
		"longitude", longitude,
		"date", date.Format("2006-01-02"))
}

// Close releases the interpreter and model resources.
func (p *Perch) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.interpreter != nil {
		p.interpreter.Delete()
		p.interpreter = nil
	}
	if p.model != nil {
		p.model.Delete()
		p.model = nil
	}
}

func inferenceError(err error, windowIndex int) error {
	return errors.New(err).
		Component("perch").
		Category(errors.CategoryInference).
		Context("window_index", windowIndex).
		Build()
}
