package optim

// SGD is a stochastic subgradient descent optimizer with an optional L2
// weight decay term, as used by regularized hinge-loss training.
type SGD struct {
	LearningRate float64
	WeightDecay  float64
}

func NewSGD(lr float64) *SGD { return &SGD{LearningRate: lr} }

func NewSGDWithDecay(lr, decay float64) *SGD { return &SGD{LearningRate: lr, WeightDecay: decay} }

// Step updates weights in place: w -= lr * (grads + decay*w).
func (o *SGD) Step(weights, grads []float64) {
	for i := range weights {
		weights[i] -= o.LearningRate * (grads[i] + o.WeightDecay*weights[i])
	}
}
