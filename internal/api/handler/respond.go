package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/restaurant-manager-api/internal/domain"
	"github.com/vfg2006/restaurant-manager-api/internal/usecases/account"
	"github.com/vfg2006/restaurant-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/restaurant-manager-api/internal/usecases/business"
	"github.com/vfg2006/restaurant-manager-api/pkg/apiErrors"
	"github.com/vfg2006/restaurant-manager-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type MessageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("Erro ao enviar resposta")
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, target any) bool {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		log.ForContext(r.Context()).WithError(err).Warn("Corpo da requisição inválido")
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
		return false
	}
	return true
}

// writeServiceError converte os erros dos casos de uso no formato da API
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	logger := log.ForContext(r.Context()).WithError(err)

	var businessErr *business.BusinessError
	if errors.As(err, &businessErr) {
		if apiErrors.StatusFor(businessErr.Code) >= http.StatusInternalServerError {
			logger.Error(fallback)
		}
		apiErrors.WriteError(w, businessErr.Code, businessErr.Details, nil)
		return
	}

	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		if apiErrors.StatusFor(authErr.Code) >= http.StatusInternalServerError {
			logger.Error(fallback)
		}
		apiErrors.WriteError(w, authErr.Code, authErr.Details, nil)
		return
	}

	var accountErr *account.AccountError
	if errors.As(err, &accountErr) {
		if apiErrors.StatusFor(accountErr.Code) >= http.StatusInternalServerError {
			logger.Error(fallback)
		}
		apiErrors.WriteError(w, accountErr.Code, accountErr.Details, nil)
		return
	}

	logger.Error(fallback)
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
}

func param(r *http.Request, name string) string {
	return httprouter.ParamsFromContext(r.Context()).ByName(name)
}

func restaurantID(r *http.Request) string {
	return param(r, "restaurant_id")
}

func intParam(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	value, err := strconv.Atoi(param(r, name))
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID inválido", nil)
		return 0, false
	}
	return value, true
}

// parsePeriod lê ?start=&end= (YYYY-MM-DD) ou ?month=YYYY-MM. Sem filtros,
// usa o mês corrente.
func parsePeriod(r *http.Request, now time.Time) (domain.Period, error) {
	query := r.URL.Query()

	if month := query.Get("month"); month != "" {
		ref, err := time.Parse("2006-01", month)
		if err != nil {
			return domain.Period{}, errors.New("mês deve estar no formato YYYY-MM")
		}
		return domain.MonthPeriod(ref), nil
	}

	start, end := query.Get("start"), query.Get("end")
	if start == "" && end == "" {
		return domain.MonthPeriod(now), nil
	}
	if start == "" || end == "" {
		return domain.Period{}, errors.New("informe início e fim do período")
	}

	startDate, err := time.Parse(time.DateOnly, start)
	if err != nil {
		return domain.Period{}, errors.New("data inicial deve estar no formato YYYY-MM-DD")
	}
	endDate, err := time.Parse(time.DateOnly, end)
	if err != nil {
		return domain.Period{}, errors.New("data final deve estar no formato YYYY-MM-DD")
	}

	period := domain.Period{Start: startDate, End: endDate}
	if !period.IsValid() {
		return domain.Period{}, errors.New("data final anterior à data inicial")
	}
	return period, nil
}

func periodFromRequest(w http.ResponseWriter, r *http.Request) (domain.Period, bool) {
	period, err := parsePeriod(r, time.Now())
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
		return domain.Period{}, false
	}
	return period, true
}

func optionalFloat(w http.ResponseWriter, r *http.Request, name string) (*float64, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, true
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, name+" deve ser numérico", nil)
		return nil, false
	}
	return &value, true
}
