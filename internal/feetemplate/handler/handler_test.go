package handler

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"

	"caseflow/internal/feetemplate/service"
	feestore "caseflow/internal/feetemplate/store/template"
	"caseflow/internal/tenant"
	id "caseflow/pkg/domain"
	"caseflow/pkg/testutil"
)

func newRouter() (chi.Router, tenant.Identity, tenant.Identity) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.New(feestore.NewInMemory())
	h := New(svc, logger)

	r := chi.NewRouter()
	h.Register(r)

	company := id.NewCompanyID()
	admin := tenant.Identity{UserID: id.NewUserID(), CompanyID: company, Role: id.RoleAdmin}
	staff := tenant.Identity{UserID: id.NewUserID(), CompanyID: company, Role: id.RoleStaff}
	return r, admin, staff
}

func priceRequest(name string, def, min, max int64) FeeTemplateRequest {
	return FeeTemplateRequest{
		Name:         name,
		DefaultPrice: &def,
		MinPrice:     &min,
		MaxPrice:     &max,
		Currency:     "AED",
	}
}

func TestCreateFeeTemplate(t *testing.T) {
	r, admin, _ := newRouter()

	req := testutil.NewJSONRequest(t, http.MethodPost, "/settings/fee-templates", priceRequest("Standard Placement", 2500_00, 2000_00, 3000_00))
	rr := testutil.DoRequest(r, testutil.WithIdentity(req, admin))
	testutil.AssertStatus(t, rr, http.StatusCreated)

	resp := testutil.UnmarshalResponse[FeeTemplateResponse](t, rr)
	if resp.ID == "" {
		t.Fatal("expected template id to be set")
	}
	if resp.DefaultPrice != 2500_00 || resp.MinPrice != 2000_00 || resp.MaxPrice != 3000_00 {
		t.Fatalf("unexpected prices: %+v", resp)
	}
	if resp.Currency != "AED" {
		t.Fatalf("expected currency AED, got %q", resp.Currency)
	}
}

func TestCreateFeeTemplateRequiresAdmin(t *testing.T) {
	r, _, staff := newRouter()

	req := testutil.NewJSONRequest(t, http.MethodPost, "/settings/fee-templates", priceRequest("Standard Placement", 2500_00, 2000_00, 3000_00))
	rr := testutil.DoRequest(r, testutil.WithIdentity(req, staff))
	testutil.AssertStatusAndError(t, rr, http.StatusForbidden, "forbidden")
}

func TestCreateFeeTemplateValidation(t *testing.T) {
	r, admin, _ := newRouter()

	t.Run("min above max", func(t *testing.T) {
		req := testutil.NewJSONRequest(t, http.MethodPost, "/settings/fee-templates", priceRequest("Broken", 2500_00, 3000_00, 2000_00))
		rr := testutil.DoRequest(r, testutil.WithIdentity(req, admin))
		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "validation_failed")
	})

	t.Run("default outside range", func(t *testing.T) {
		req := testutil.NewJSONRequest(t, http.MethodPost, "/settings/fee-templates", priceRequest("Broken", 5000_00, 2000_00, 3000_00))
		rr := testutil.DoRequest(r, testutil.WithIdentity(req, admin))
		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "validation_failed")
	})

	t.Run("missing prices", func(t *testing.T) {
		req := testutil.NewJSONRequest(t, http.MethodPost, "/settings/fee-templates", FeeTemplateRequest{Name: "Standard", Currency: "AED"})
		rr := testutil.DoRequest(r, testutil.WithIdentity(req, admin))
		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "validation_failed")
	})
}

func TestGetFeeTemplate(t *testing.T) {
	r, admin, staff := newRouter()

	req := testutil.NewJSONRequest(t, http.MethodPost, "/settings/fee-templates", priceRequest("Standard Placement", 2500_00, 2000_00, 3000_00))
	rr := testutil.DoRequest(r, testutil.WithIdentity(req, admin))
	testutil.AssertStatus(t, rr, http.StatusCreated)
	created := testutil.UnmarshalResponse[FeeTemplateResponse](t, rr)

	getReq := testutil.NewRequest(t, http.MethodGet, "/settings/fee-templates/"+created.ID)
	getRR := testutil.DoRequest(r, testutil.WithIdentity(getReq, staff))
	testutil.AssertStatus(t, getRR, http.StatusOK)

	resp := testutil.UnmarshalResponse[FeeTemplateResponse](t, getRR)
	if resp.Name != "Standard Placement" {
		t.Fatalf("unexpected template: %+v", resp)
	}
}

func TestGetFeeTemplateUnknownID(t *testing.T) {
	r, _, staff := newRouter()

	req := testutil.NewRequest(t, http.MethodGet, "/settings/fee-templates/"+id.NewFeeTemplateID().String())
	rr := testutil.DoRequest(r, testutil.WithIdentity(req, staff))
	testutil.AssertStatusAndError(t, rr, http.StatusNotFound, "not_found")
}

func TestListFeeTemplates(t *testing.T) {
	r, admin, staff := newRouter()

	for _, name := range []string{"Standard Placement", "Domestic Worker"} {
		req := testutil.NewJSONRequest(t, http.MethodPost, "/settings/fee-templates", priceRequest(name, 2500_00, 2000_00, 3000_00))
		rr := testutil.DoRequest(r, testutil.WithIdentity(req, admin))
		testutil.AssertStatus(t, rr, http.StatusCreated)
	}

	req := testutil.NewRequest(t, http.MethodGet, "/settings/fee-templates")
	rr := testutil.DoRequest(r, testutil.WithIdentity(req, staff))
	testutil.AssertStatus(t, rr, http.StatusOK)

	resp := testutil.UnmarshalResponse[map[string][]FeeTemplateResponse](t, rr)
	if got := len((*resp)["templates"]); got != 2 {
		t.Fatalf("expected 2 templates, got %d", got)
	}
}
