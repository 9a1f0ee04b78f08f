package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"cryptobuzz-srv/internal/alert"
	"cryptobuzz-srv/internal/alert/repository"
	"cryptobuzz-srv/internal/model"
	"cryptobuzz-srv/internal/price"
	pkgErrors "cryptobuzz-srv/pkg/errors"
)

func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, ip alert.CreateInput) (model.Alert, error) {
	if !ip.Type.IsValid() {
		return model.Alert{}, alert.ErrInvalidType
	}
	sym, err := normalizeAlertSymbol(ip.Type, ip.Symbol)
	if err != nil {
		return model.Alert{}, err
	}
	params, err := uc.decodeParams(ip.Type, ip.Params)
	if err != nil {
		return model.Alert{}, err
	}

	active := true
	if ip.Active != nil {
		active = *ip.Active
	}

	a, err := uc.repo.Create(ctx, sc, repository.CreateOptions{
		Symbol: sym,
		Type:   ip.Type,
		Params: params,
		Active: active,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.alert.usecase.Create.repo.Create: %v", err)
		return model.Alert{}, err
	}
	return a, nil
}

func (uc *implUseCase) List(ctx context.Context, sc model.Scope, ip alert.ListInput) ([]model.Alert, error) {
	opts := repository.ListOptions{Filter: repository.Filter{
		Active: ip.Filter.Active,
	}}
	for _, t := range ip.Filter.Types {
		if !t.IsValid() {
			return nil, alert.ErrInvalidType
		}
		opts.Filter.Types = append(opts.Filter.Types, t)
	}
	if ip.Filter.Symbol != "" {
		sym, ok := price.NormalizeSymbol(ip.Filter.Symbol)
		if !ok {
			return nil, alert.ErrInvalidSymbol
		}
		opts.Filter.Symbol = sym
	}

	alerts, err := uc.repo.List(ctx, sc, opts)
	if err != nil {
		uc.l.Errorf(ctx, "internal.alert.usecase.List.repo.List: %v", err)
		return nil, err
	}
	return alerts, nil
}

func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (model.Alert, error) {
	a, err := uc.repo.Detail(ctx, sc, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Alert{}, alert.ErrAlertNotFound
		}
		uc.l.Errorf(ctx, "internal.alert.usecase.Detail.repo.Detail: %v", err)
		return model.Alert{}, err
	}
	return a, nil
}

func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, ip alert.UpdateInput) (model.Alert, error) {
	if ip.Active == nil && ip.SnoozeUntil == nil && !ip.ClearSnooze {
		return model.Alert{}, alert.ErrNothingToDo
	}

	a, err := uc.repo.Update(ctx, sc, repository.UpdateOptions{
		ID:          ip.ID,
		Active:      ip.Active,
		SnoozeUntil: ip.SnoozeUntil,
		ClearSnooze: ip.ClearSnooze,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Alert{}, alert.ErrAlertNotFound
		}
		uc.l.Errorf(ctx, "internal.alert.usecase.Update.repo.Update: %v", err)
		return model.Alert{}, err
	}
	return a, nil
}

func (uc *implUseCase) Snooze(ctx context.Context, sc model.Scope, ip alert.SnoozeInput) (model.Alert, error) {
	if ip.Minutes < alert.MinSnoozeMinutes || ip.Minutes > alert.MaxSnoozeMinutes {
		return model.Alert{}, alert.ErrInvalidSnooze
	}

	until := uc.clock().Add(time.Duration(ip.Minutes) * time.Minute)
	return uc.Update(ctx, sc, alert.UpdateInput{ID: ip.ID, SnoozeUntil: &until})
}

func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	if err := uc.repo.Delete(ctx, sc, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return alert.ErrAlertNotFound
		}
		uc.l.Errorf(ctx, "internal.alert.usecase.Delete.repo.Delete: %v", err)
		return err
	}
	return nil
}

func (uc *implUseCase) ListFires(ctx context.Context, sc model.Scope, ip alert.ListFiresInput) (alert.ListFiresOutput, error) {
	fires, pag, err := uc.repo.ListFires(ctx, sc, repository.ListFiresOptions{PaginateQuery: ip.PaginateQuery})
	if err != nil {
		uc.l.Errorf(ctx, "internal.alert.usecase.ListFires.repo.ListFires: %v", err)
		return alert.ListFiresOutput{}, err
	}
	return alert.ListFiresOutput{Fires: fires, Paginator: pag}, nil
}

// ToggleRecommended creates the alert on its first enable and flips active afterwards.
// Disabling an alert that was never created is a no-op returning ErrAlertNotFound.
func (uc *implUseCase) ToggleRecommended(ctx context.Context, sc model.Scope, ip alert.ToggleRecommendedInput) (model.Alert, error) {
	if !ip.Type.IsValid() {
		return model.Alert{}, alert.ErrInvalidType
	}
	sym, err := normalizeAlertSymbol(ip.Type, ip.Symbol)
	if err != nil {
		return model.Alert{}, err
	}

	existing, err := uc.repo.GetOne(ctx, sc, repository.GetOneOptions{Type: ip.Type, Symbol: sym})
	switch {
	case err == nil:
		if existing.Active == ip.Enabled {
			return existing, nil
		}
		enabled := ip.Enabled
		return uc.Update(ctx, sc, alert.UpdateInput{ID: existing.ID, Active: &enabled})
	case !errors.Is(err, repository.ErrNotFound):
		uc.l.Errorf(ctx, "internal.alert.usecase.ToggleRecommended.repo.GetOne: %v", err)
		return model.Alert{}, err
	}

	if !ip.Enabled {
		return model.Alert{}, alert.ErrAlertNotFound
	}
	return uc.Create(ctx, sc, alert.CreateInput{Symbol: sym, Type: ip.Type, Params: ip.Params})
}

// normalizeAlertSymbol requires ALL for aggregate types and a ticker for the rest.
func normalizeAlertSymbol(t model.AlertType, raw string) (string, error) {
	sym, ok := price.NormalizeSymbol(raw)
	if t.IsAggregate() {
		if raw == "" || sym == model.SymbolAll {
			return model.SymbolAll, nil
		}
		return "", alert.ErrInvalidSymbol
	}
	if !ok || sym == model.SymbolAll {
		return "", alert.ErrInvalidSymbol
	}
	return sym, nil
}

func (uc *implUseCase) decodeParams(t model.AlertType, raw json.RawMessage) (model.AlertParams, error) {
	p, err := model.DecodeAlertParams(t, raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", alert.ErrInvalidParams, err)
	}
	if err := uc.validate.Struct(p); err != nil {
		return nil, pkgErrors.FromValidator(err)
	}
	return p, nil
}
