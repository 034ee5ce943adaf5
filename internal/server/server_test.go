package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/elizabeth-dyson/tidytuesday-tuition/internal/dataset"
	"github.com/elizabeth-dyson/tidytuesday-tuition/internal/shape"
)

const (
	costCSV = "name,state,state_code,type,degree_length,room_and_board,in_state_tuition,in_state_total,out_of_state_tuition,out_of_state_total\n" +
		"A,California,CA,Public,4 Year,10000,8000,18000,20000,30000\n" +
		"B,New York,NY,Private,2 Year,12000,30000,42000,30000,42000\n"
	diversityCSV = "name,total_enrollment,state,category,enrollment\n" +
		"A,1000,California,Women,400\n" +
		"B,600,New York,Women,300\n"
	salaryCSV = "rank,name,state_name,early_career_pay,mid_career_pay,make_world_better_percent,stem_percent\n" +
		"1,A,California,50000,90000,NA,30\n"
	incomeCSV = "name,state,total_price,year,campus,net_cost,income_lvl\n" +
		"A,California,20000,2017,On Campus,5000,\"0 to 30,000\"\n" +
		"A,California,20000,2018,On Campus,2000,\"Over 110,000\"\n"
)

func newTestServer(src dataset.Source) http.Handler {
	gin.SetMode(gin.TestMode)
	return New(src, zerolog.Nop()).Handler()
}

func fixture() dataset.MemSource {
	return dataset.MemSource{
		dataset.TuitionCost:     costCSV,
		dataset.DiversitySchool: diversityCSV,
		dataset.SalaryPotential: salaryCSV,
		dataset.TuitionIncome:   incomeCSV,
	}
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeChart(t *testing.T, rec *httptest.ResponseRecorder) shape.Chart {
	t.Helper()
	var c shape.Chart
	if err := json.Unmarshal(rec.Body.Bytes(), &c); err != nil {
		t.Fatalf("decode: %v: %s", err, rec.Body.String())
	}
	return c
}

func TestHealth(t *testing.T) {
	rec := get(t, newTestServer(fixture()), "/healthz")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "healthy") {
		t.Fatalf("body %s", rec.Body.String())
	}
	if rec.Header().Get(requestIDHeader) == "" {
		t.Fatal("missing request id header")
	}
}

func TestRequestIDPropagated(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	newTestServer(fixture()).ServeHTTP(rec, req)
	if got := rec.Header().Get(requestIDHeader); got != "abc-123" {
		t.Fatalf("request id = %q", got)
	}
}

func TestPages(t *testing.T) {
	h := newTestServer(fixture())
	cases := []struct {
		target string
		page   string
		kind   shape.Kind
	}{
		{"/api/v1/diversity", "diversity", shape.KindBar},
		{"/api/v1/diversity?type=race&group_by=Division", "diversity", shape.KindBar},
		{"/api/v1/salary?color=Region&tuition=Out-of-State", "salary", shape.KindScatter},
		{"/api/v1/income?year=2017", "income", shape.KindBar},
		{"/api/v1/income?chart=line", "income", shape.KindLine},
		{"/api/v1/statemap", "statemap", shape.KindChoropleth},
	}
	for _, tc := range cases {
		t.Run(tc.target, func(t *testing.T) {
			rec := get(t, h, tc.target)
			if rec.Code != http.StatusOK {
				t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
			}
			c := decodeChart(t, rec)
			if c.Page != tc.page || c.Kind != tc.kind {
				t.Fatalf("got page %q kind %q", c.Page, c.Kind)
			}
		})
	}
}

func TestStateMapMultiSelect(t *testing.T) {
	h := newTestServer(fixture())
	rec := get(t, h, "/api/v1/statemap?type=Public&length=4+Year&length=2+Year")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}
	c := decodeChart(t, rec)
	if len(c.Cells) != 1 || c.Cells[0].StateCode != "CA" {
		t.Fatalf("cells %+v", c.Cells)
	}
}

func TestIncomeYears(t *testing.T) {
	rec := get(t, newTestServer(fixture()), "/api/v1/income/years")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	var body struct{ Min, Max int }
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Min != 2017 || body.Max != 2018 {
		t.Fatalf("years %+v", body)
	}
}

func TestErrorStatus(t *testing.T) {
	h := newTestServer(fixture())
	for _, target := range []string{
		"/api/v1/diversity?type=Age",
		"/api/v1/income?year=abc",
		"/api/v1/income?year=1999",
		"/api/v1/statemap?type=Charter",
	} {
		rec := get(t, h, target)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status %d", target, rec.Code)
		}
	}

	broken := fixture()
	delete(broken, dataset.SalaryPotential)
	rec := get(t, newTestServer(broken), "/api/v1/salary")
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("missing dataset: status %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "salary_potential") {
		t.Fatalf("body %s", rec.Body.String())
	}
}
