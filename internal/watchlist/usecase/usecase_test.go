package usecase

import (
	"context"
	"errors"
	"testing"

	"cryptobuzz-srv/internal/model"
	"cryptobuzz-srv/internal/news"
	"cryptobuzz-srv/internal/stream"
	"cryptobuzz-srv/internal/watchlist"
	"cryptobuzz-srv/internal/watchlist/repository"
	"cryptobuzz-srv/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testScope = model.Scope{UserID: "u1"}

type fakeRepo struct {
	watches []model.Watch
	err     error
}

func (f *fakeRepo) List(context.Context, model.Scope) ([]model.Watch, error) {
	return f.watches, f.err
}

func (f *fakeRepo) Create(_ context.Context, sc model.Scope, opts repository.CreateOptions) (model.Watch, error) {
	if f.err != nil {
		return model.Watch{}, f.err
	}
	for _, w := range f.watches {
		if w.Symbol == opts.Symbol {
			return model.Watch{}, repository.ErrAlreadyExists
		}
	}
	w := model.Watch{ID: "w-" + opts.Symbol, UserID: sc.UserID, Symbol: opts.Symbol, CmcID: opts.CmcID, Name: opts.Name}
	f.watches = append(f.watches, w)
	return w, nil
}

func (f *fakeRepo) Delete(_ context.Context, _ model.Scope, id string) error {
	for i, w := range f.watches {
		if w.ID == id {
			f.watches = append(f.watches[:i], f.watches[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeRepo) Symbols(context.Context) ([]string, error) {
	out := make([]string, 0, len(f.watches))
	for _, w := range f.watches {
		out = append(out, w.Symbol)
	}
	return out, f.err
}

type fakeStream struct {
	stream.UseCase
	added []string
}

func (f *fakeStream) AddWatchedSymbol(_ context.Context, s string) {
	f.added = append(f.added, s)
}

type fakeNews struct {
	news.UseCase
	stored int
	err    error
}

func (f *fakeNews) Ingest(context.Context) (news.IngestOutput, error) {
	return news.IngestOutput{Fetched: f.stored, Stored: f.stored}, f.err
}

func TestCreate(t *testing.T) {
	bad := 0

	tcs := map[string]struct {
		input   watchlist.CreateInput
		wantErr error
		wantSym string
	}{
		"normalizes symbol": {input: watchlist.CreateInput{Symbol: " doge ", Name: " Dogecoin "}, wantSym: "DOGE"},
		"invalid symbol":    {input: watchlist.CreateInput{Symbol: "$$$"}, wantErr: watchlist.ErrInvalidSymbol},
		"reserved symbol":   {input: watchlist.CreateInput{Symbol: "all"}, wantErr: watchlist.ErrInvalidSymbol},
		"invalid cmc id":    {input: watchlist.CreateInput{Symbol: "BTC", CmcID: &bad}, wantErr: watchlist.ErrInvalidCmcID},
		"duplicate":         {input: watchlist.CreateInput{Symbol: "BTC"}, wantErr: watchlist.ErrWatchExists},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			repo := &fakeRepo{watches: []model.Watch{{ID: "w-BTC", Symbol: "BTC"}}}
			st := &fakeStream{}
			uc := New(log.NewNop(), repo, st, nil)

			w, err := uc.Create(context.Background(), testScope, tc.input)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Empty(t, st.added)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantSym, w.Symbol)
			assert.Equal(t, "Dogecoin", w.Name)
			assert.Equal(t, []string{tc.wantSym}, st.added)
		})
	}
}

func TestDeleteNotFound(t *testing.T) {
	uc := New(log.NewNop(), &fakeRepo{}, &fakeStream{}, nil)
	err := uc.Delete(context.Background(), testScope, "missing")
	assert.ErrorIs(t, err, watchlist.ErrWatchNotFound)
}

func TestSeedIgnoresDuplicates(t *testing.T) {
	repo := &fakeRepo{watches: []model.Watch{{ID: "w-ETH", Symbol: "ETH"}}}
	st := &fakeStream{}
	uc := New(log.NewNop(), repo, st, &fakeNews{stored: 7})

	out, err := uc.Seed(context.Background(), testScope)
	require.NoError(t, err)
	assert.Len(t, out.Watches, 3)
	assert.Equal(t, 7, out.NewsStored)
	assert.ElementsMatch(t, []string{"BTC", "SOL"}, st.added)

	out, err = uc.Seed(context.Background(), testScope)
	require.NoError(t, err)
	assert.Len(t, out.Watches, 3)
}

func TestSeedSurvivesNewsFailure(t *testing.T) {
	uc := New(log.NewNop(), &fakeRepo{}, &fakeStream{}, &fakeNews{err: errors.New("upstream down")})

	out, err := uc.Seed(context.Background(), testScope)
	require.NoError(t, err)
	assert.Len(t, out.Watches, 3)
	assert.Zero(t, out.NewsStored)
}

func TestSeedFailsOnStoreError(t *testing.T) {
	uc := New(log.NewNop(), &fakeRepo{err: errors.New("db down")}, &fakeStream{}, nil)
	_, err := uc.Seed(context.Background(), testScope)
	require.Error(t, err)
}
