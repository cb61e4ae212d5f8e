package mock

import (
	"context"

	"github.com/fwojciec/tabdoc"
)

var _ tabdoc.LanguagePicker = (*LanguagePicker)(nil)

// LanguagePicker is a mock implementation of tabdoc.LanguagePicker.
type LanguagePicker struct {
	PickFn func(ctx context.Context, available []tabdoc.Language) ([]tabdoc.Language, error)
}

func (p *LanguagePicker) Pick(ctx context.Context, available []tabdoc.Language) ([]tabdoc.Language, error) {
	return p.PickFn(ctx, available)
}

var _ tabdoc.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of tabdoc.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return d.WaitFn(ctx, domain)
}
