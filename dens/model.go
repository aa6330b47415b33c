package dens

// Model names an observation model.
type Model int

const (
	Continuous Model = iota
	Probit
	Poisson
)

func (m Model) String() string {
	switch m {
	case Continuous:
		return "continuous"
	case Probit:
		return "probit"
	case Poisson:
		return "poisson"
	}
	return "unknown"
}

// Likelihood returns the model's log-likelihood, or ErrNotImplemented for
// a model without a defined closed form. Selecting through here keeps an
// unconfigured model from silently corrupting a chain.
func (m Model) Likelihood() (Likelihood, error) {
	switch m {
	case Continuous:
		return ContinuousLikelihood, nil
	case Probit:
		return ProbitLikelihood, nil
	case Poisson:
		return PoissonLikelihood, nil
	}
	return nil, ErrNotImplemented
}

// Target returns the model's log-posterior, or ErrNotImplemented.
func (m Model) Target() (Target, error) {
	ll, err := m.Likelihood()
	if err != nil {
		return nil, err
	}
	return Compose(ll), nil
}
