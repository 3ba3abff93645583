package services

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"time"

	"hotel-assistant/models"
	"hotel-assistant/utils"
)

// DefaultHighDemandThreshold applies when neither the intent nor the options
// carry a threshold.
const DefaultHighDemandThreshold = 0.8

// ResolverOptions configures a QueryResolver.
type ResolverOptions struct {
	Metrics             MetricsOptions
	HighDemandThreshold float64
}

// QueryResolver answers query intents. It keeps no state between calls and
// is safe for concurrent use; build one per process.
type QueryResolver struct {
	store     Store
	validator *QueryValidator
	opts      ResolverOptions
}

func NewQueryResolver(store Store, opts ResolverOptions) *QueryResolver {
	if t := opts.HighDemandThreshold; math.IsNaN(t) || t <= 0 || t > 1 {
		opts.HighDemandThreshold = DefaultHighDemandThreshold
	}
	return &QueryResolver{store: store, validator: NewQueryValidator(), opts: opts}
}

// Resolve validates intent, reads one snapshot of the store and computes the
// answer. Failures are returned as AnswerError; the cause is available
// through Answer.Err.
func (r *QueryResolver) Resolve(ctx context.Context, intent QueryIntent) Answer {
	started := time.Now()
	answer := r.resolve(ctx, intent)
	attrs := []any{
		slog.String("query", intent.Kind),
		slog.String("answer", string(answer.Kind)),
		slog.Duration("elapsed", time.Since(started)),
	}
	if answer.Failure != nil {
		attrs = append(attrs, slog.String("failure", answer.Failure.Code))
	}
	slog.Info("query resolved", attrs...)
	return answer
}

func (r *QueryResolver) resolve(ctx context.Context, intent QueryIntent) Answer {
	kind, terminal, err := r.validator.Precheck(intent)
	if err != nil {
		return errorAnswer(kind, err)
	}
	if terminal != nil {
		return *terminal
	}

	snapshot, err := r.store.Snapshot(ctx)
	if err != nil {
		slog.Error("reservation snapshot failed", slog.Any("error", err))
		return errorAnswer(kind, err)
	}
	if err := r.validator.CheckRoomType(snapshot.Catalog, intent); err != nil {
		return errorAnswer(kind, err)
	}

	var answer Answer
	switch kind {
	case QueryAvailability:
		answer, err = r.availability(snapshot, intent)
	case QueryOccupancy:
		answer, err = r.occupancy(snapshot, intent)
	case QueryRevenue:
		answer, err = r.revenue(snapshot, intent)
	case QueryPopularity:
		answer, err = r.popularity(snapshot, intent)
	case QueryGuestLookup:
		answer = r.guestLookup(snapshot, intent)
	case QueryHighDemand:
		answer, err = r.highDemand(snapshot, intent)
	}
	if err != nil {
		return errorAnswer(kind, err)
	}
	answer.Query = kind
	return answer
}

func (r *QueryResolver) availability(s *Snapshot, intent QueryIntent) (Answer, error) {
	rng, _ := intent.Range()
	result, err := NewAvailabilityCalculator(s.Catalog, s.Ledger).AvailableUnits(intent.roomType(), rng.Start, rng.End)
	if err != nil {
		return Answer{}, err
	}
	answer := rangedAnswer(AnswerAvailability, rng)
	answer.RoomType = result.RoomType
	answer.Availability = &result
	return answer, nil
}

func (r *QueryResolver) occupancy(s *Snapshot, intent QueryIntent) (Answer, error) {
	rng, _ := intent.Range()
	metrics := r.metrics(s)
	answer := rangedAnswer(AnswerRate, rng)

	var rate float64
	var err error
	if name := intent.roomType(); name != "" {
		rt, lookupErr := s.Catalog.Lookup(name)
		if lookupErr != nil {
			return Answer{}, lookupErr
		}
		answer.RoomType = rt.Name
		rate, err = metrics.OccupancyRate(rt.Name, rng.Start, rng.End)
	} else {
		rate, err = metrics.HotelOccupancyRate(rng.Start, rng.End)
	}
	if err != nil {
		return Answer{}, err
	}
	answer.Rate = &rate
	return answer, nil
}

func (r *QueryResolver) revenue(s *Snapshot, intent QueryIntent) (Answer, error) {
	rng, _ := intent.Range()
	status := models.ReservationStatusConfirmed
	if intent.Status != nil {
		status = models.NormalizeReservationStatus(*intent.Status)
	}
	total, err := r.metrics(s).EstimatedRevenue(rng.Start, rng.End, status)
	if err != nil {
		return Answer{}, err
	}
	answer := rangedAnswer(AnswerMoney, rng)
	answer.Amount = &total
	answer.Status = string(status)
	return answer, nil
}

func (r *QueryResolver) popularity(s *Snapshot, intent QueryIntent) (Answer, error) {
	rng, _ := intent.Range()
	topN := 0
	if intent.TopN != nil {
		topN = *intent.TopN
	}
	ranking, err := r.metrics(s).MostRequestedRoomTypes(rng.Start, rng.End, topN)
	if err != nil {
		return Answer{}, err
	}
	answer := rangedAnswer(AnswerRanking, rng)
	answer.Ranking = ranking
	if len(ranking) == 0 {
		answer.Ranking = []RoomTypeCount{}
	}
	return answer, nil
}

func (r *QueryResolver) guestLookup(s *Snapshot, intent QueryIntent) Answer {
	matches := s.Ledger.ForGuest(intent.guestName())
	switch len(matches) {
	case 0:
		return Answer{Kind: AnswerNoMatch, Reason: "no matching record"}
	case 1:
		view := NewReservationView(matches[0])
		return Answer{Kind: AnswerReservation, Reservation: &view}
	}
	views := make([]ReservationView, 0, len(matches))
	for _, m := range matches {
		views = append(views, NewReservationView(m))
	}
	return Answer{Kind: AnswerReservations, Reservations: views}
}

func (r *QueryResolver) highDemand(s *Snapshot, intent QueryIntent) (Answer, error) {
	threshold := r.opts.HighDemandThreshold
	if intent.Threshold != nil {
		threshold = *intent.Threshold
	}
	metrics := r.metrics(s)

	var answer Answer
	var days []DemandDay
	if rng, ok := intent.Range(); ok {
		var err error
		days, err = metrics.HighDemandPeriodsBetween(rng.Start, rng.End, threshold)
		if err != nil {
			return Answer{}, err
		}
		answer = rangedAnswer(AnswerDemand, rng)
	} else {
		days = metrics.HighDemandPeriods(threshold)
		answer = Answer{Kind: AnswerDemand}
	}
	if days == nil {
		days = []DemandDay{}
	}
	answer.Demand = days
	answer.Threshold = &threshold
	return answer, nil
}

func (r *QueryResolver) metrics(s *Snapshot) *MetricsEngine {
	return NewMetricsEngine(s.Catalog, s.Ledger, r.opts.Metrics)
}

func rangedAnswer(kind AnswerKind, rng DateRange) Answer {
	return Answer{Kind: kind, Start: utils.FormatDate(rng.Start), End: utils.FormatDate(rng.End)}
}

// ErrorAnswer wraps err into an AnswerError, for adapters that fail before
// reaching the resolver, such as on unparsable dates.
func ErrorAnswer(kind QueryKind, err error) Answer {
	return errorAnswer(kind, err)
}

func errorAnswer(kind QueryKind, err error) Answer {
	failure := &Failure{Code: FailureInternal, Message: err.Error()}
	switch {
	case errors.Is(err, ErrInvalidRange):
		failure.Code = FailureInvalidRange
	case errors.Is(err, ErrUnknownRoomType):
		failure.Code = FailureUnknownRoomType
	case errors.Is(err, ErrNotFound):
		failure.Code = FailureNotFound
	case errors.Is(err, ErrStoreUnavailable):
		failure.Code = FailureStoreUnavailable
		failure.Retryable = true
	}
	return Answer{Kind: AnswerError, Query: kind, Failure: failure, cause: err}
}
