package usecase_privacy

import (
	"context"
	"errors"
	"fmt"

	"github.com/benhagg/cineniche/internal/model"
)

var ErrFailedToFetchPolicy = errors.New("failed to fetch privacy policy")

type Gateway interface {
	PrivacyPolicy(ctx context.Context) (model.PrivacyPolicy, error)
}

type Usecase struct {
	gateway Gateway
}

func New(gateway Gateway) *Usecase {
	return &Usecase{gateway: gateway}
}

func (u *Usecase) Policy(ctx context.Context) (model.PrivacyPolicy, error) {
	policy, err := u.gateway.PrivacyPolicy(ctx)
	if err != nil {
		return model.PrivacyPolicy{}, fmt.Errorf("%w: %w", ErrFailedToFetchPolicy, err)
	}
	return policy, nil
}
