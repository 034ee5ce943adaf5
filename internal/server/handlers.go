package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/elizabeth-dyson/tidytuesday-tuition/internal/dataset"
	"github.com/elizabeth-dyson/tidytuesday-tuition/internal/pages"
	"github.com/elizabeth-dyson/tidytuesday-tuition/internal/shape"
)

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// fail maps pipeline errors to status codes: bad options are the caller's
// fault, fetch and parse failures are the upstream's.
func (s *Server) fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	var fe *dataset.FetchError
	var pe *dataset.ParseError
	switch {
	case errors.Is(err, pages.ErrInvalidOption):
		status = http.StatusBadRequest
	case errors.As(err, &fe), errors.As(err, &pe):
		status = http.StatusBadGateway
	}
	zerolog.Ctx(c.Request.Context()).Warn().Err(err).Int("status", status).Msg("page failed")
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}

func (s *Server) respond(c *gin.Context, chart *shape.Chart, err error) {
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, chart)
}

// query reads an optional single-valued parameter, parsing it when present.
func query[T any](c *gin.Context, name string, def T, parse func(string) (T, error)) (T, error) {
	raw, ok := c.GetQuery(name)
	if !ok {
		return def, nil
	}
	return parse(raw)
}

func (s *Server) diversity(c *gin.Context) {
	opt := pages.DefaultDiversityOptions()
	var err error
	if opt.Type, err = query(c, "type", opt.Type, pages.ParseDiversityType); err != nil {
		s.fail(c, err)
		return
	}
	if opt.GroupBy, err = query(c, "group_by", opt.GroupBy, pages.ParseXGroup); err != nil {
		s.fail(c, err)
		return
	}
	chart, err := pages.Diversity(c.Request.Context(), s.src, opt)
	s.respond(c, chart, err)
}

func (s *Server) salary(c *gin.Context) {
	opt := pages.DefaultSalaryOptions()
	var err error
	if opt.Color, err = query(c, "color", opt.Color, pages.ParseColorBy); err != nil {
		s.fail(c, err)
		return
	}
	if opt.Tuition, err = query(c, "tuition", opt.Tuition, pages.ParseTuitionType); err != nil {
		s.fail(c, err)
		return
	}
	if opt.Salary, err = query(c, "salary", opt.Salary, pages.ParseSalaryType); err != nil {
		s.fail(c, err)
		return
	}
	chart, err := pages.Salary(c.Request.Context(), s.src, opt)
	s.respond(c, chart, err)
}

func parseYear(s string) (int, error) {
	y, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: year %q", pages.ErrInvalidOption, s)
	}
	return y, nil
}

func (s *Server) income(c *gin.Context) {
	opt := pages.DefaultIncomeOptions()
	var err error
	if opt.Year, err = query(c, "year", 0, parseYear); err != nil {
		s.fail(c, err)
		return
	}
	if opt.GroupBy, err = query(c, "group_by", opt.GroupBy, pages.ParseIncomeGroup); err != nil {
		s.fail(c, err)
		return
	}
	if opt.Binning, err = query(c, "binning", opt.Binning, pages.ParseBinning); err != nil {
		s.fail(c, err)
		return
	}
	if opt.Chart, err = query(c, "chart", opt.Chart, pages.ParseChartKind); err != nil {
		s.fail(c, err)
		return
	}
	chart, err := pages.Income(c.Request.Context(), s.src, opt)
	s.respond(c, chart, err)
}

func (s *Server) incomeYears(c *gin.Context) {
	lo, hi, err := pages.IncomeYears(c.Request.Context(), s.src)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"min": lo, "max": hi})
}

// stateMap reads repeated type and length parameters. An absent parameter
// selects every value.
func (s *Server) stateMap(c *gin.Context) {
	opt := pages.DefaultStateMapOptions()
	var err error
	if raw, ok := c.GetQueryArray("type"); ok {
		if opt.Types, err = pages.ParseSchoolTypes(raw); err != nil {
			s.fail(c, err)
			return
		}
	}
	if raw, ok := c.GetQueryArray("length"); ok {
		if opt.Lengths, err = pages.ParseDegreeLengths(raw); err != nil {
			s.fail(c, err)
			return
		}
	}
	if opt.Stat, err = query(c, "stat", opt.Stat, pages.ParseMapStat); err != nil {
		s.fail(c, err)
		return
	}
	chart, err := pages.StateMap(c.Request.Context(), s.src, opt)
	s.respond(c, chart, err)
}
