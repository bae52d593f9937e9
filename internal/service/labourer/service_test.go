package labourer

import (
	"context"
	"fmt"
	"testing"

	"github.com/shairahamancsc/labourpro-backend-go/internal/domain/labourer"
	"github.com/shairahamancsc/labourpro-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLabourerRepo struct {
	labourers map[string]labourer.Labourer
	deleted   []string
	nextID    int
}

func newFakeRepo() *fakeLabourerRepo {
	return &fakeLabourerRepo{labourers: make(map[string]labourer.Labourer)}
}

func (f *fakeLabourerRepo) Create(ctx context.Context, lab labourer.Labourer) (labourer.Labourer, error) {
	f.nextID++
	lab.ID = fmt.Sprintf("018f3f60-0000-7000-8000-%012d", f.nextID)
	f.labourers[lab.ID] = lab
	return lab, nil
}

func (f *fakeLabourerRepo) GetByID(ctx context.Context, id string) (labourer.Labourer, error) {
	lab, ok := f.labourers[id]
	if !ok {
		return labourer.Labourer{}, labourer.ErrLabourerNotFound
	}
	return lab, nil
}

func (f *fakeLabourerRepo) List(ctx context.Context, filter labourer.LabourerFilter) ([]labourer.Labourer, int64, error) {
	var out []labourer.Labourer
	for _, lab := range f.labourers {
		out = append(out, lab)
	}
	return out, int64(len(out)), nil
}

func (f *fakeLabourerRepo) ListAll(ctx context.Context) ([]labourer.Labourer, error) {
	var out []labourer.Labourer
	for _, lab := range f.labourers {
		out = append(out, lab)
	}
	return out, nil
}

func (f *fakeLabourerRepo) ListByIDs(ctx context.Context, ids []string) ([]labourer.Labourer, error) {
	var out []labourer.Labourer
	for _, id := range ids {
		if lab, ok := f.labourers[id]; ok {
			out = append(out, lab)
		}
	}
	return out, nil
}

func (f *fakeLabourerRepo) Update(ctx context.Context, lab labourer.Labourer) error {
	if _, ok := f.labourers[lab.ID]; !ok {
		return labourer.ErrLabourerNotFound
	}
	f.labourers[lab.ID] = lab
	return nil
}

func (f *fakeLabourerRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.labourers[id]; !ok {
		return labourer.ErrLabourerNotFound
	}
	delete(f.labourers, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeLabourerRepo) AdjustLoanBalance(ctx context.Context, id string, delta decimal.Decimal) (decimal.Decimal, error) {
	lab, ok := f.labourers[id]
	if !ok {
		return decimal.Zero, labourer.ErrLabourerNotFound
	}
	lab.LoanBalance = lab.LoanBalance.Add(delta)
	f.labourers[id] = lab
	return lab.LoanBalance, nil
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestLabourerCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("creates with zero loan balance", func(t *testing.T) {
		svc := NewLabourerService(newFakeRepo())

		wage := dec("500")
		resp, err := svc.Create(ctx, labourer.CreateLabourerRequest{
			FullName:    "Ramesh Kumar",
			DailySalary: &wage,
		})
		require.NoError(t, err)
		assert.True(t, resp.LoanBalance.IsZero())
		assert.True(t, dec("500").Equal(resp.DailySalary))
		assert.False(t, resp.HasFaceScan)
	})

	t.Run("rejects missing daily wage", func(t *testing.T) {
		svc := NewLabourerService(newFakeRepo())

		_, err := svc.Create(ctx, labourer.CreateLabourerRequest{FullName: "Ramesh Kumar"})
		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Contains(t, verrs.ToMap(), "daily_salary")
	})

	t.Run("face scan is reported as a flag, never echoed back", func(t *testing.T) {
		svc := NewLabourerService(newFakeRepo())

		wage := dec("500")
		scan := "data:image/jpeg;base64,abcd"
		resp, err := svc.Create(ctx, labourer.CreateLabourerRequest{
			FullName:        "Ramesh Kumar",
			DailySalary:     &wage,
			FaceScanDataURI: &scan,
		})
		require.NoError(t, err)
		assert.True(t, resp.HasFaceScan)
	})
}

func TestLabourerDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("refuses while a loan balance is outstanding", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewLabourerService(repo)

		wage := dec("500")
		created, err := svc.Create(ctx, labourer.CreateLabourerRequest{
			FullName:    "Ramesh Kumar",
			DailySalary: &wage,
		})
		require.NoError(t, err)

		_, err = repo.AdjustLoanBalance(ctx, created.ID, dec("200"))
		require.NoError(t, err)

		err = svc.Delete(ctx, created.ID)
		assert.ErrorIs(t, err, labourer.ErrHasOpenLoan)
		assert.Empty(t, repo.deleted)
	})

	t.Run("deletes once the balance is settled", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewLabourerService(repo)

		wage := dec("500")
		created, err := svc.Create(ctx, labourer.CreateLabourerRequest{
			FullName:    "Ramesh Kumar",
			DailySalary: &wage,
		})
		require.NoError(t, err)

		require.NoError(t, svc.Delete(ctx, created.ID))
		assert.Equal(t, []string{created.ID}, repo.deleted)
	})
}
