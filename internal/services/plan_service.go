package services

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/sales-plan/backend/internal/config"
	"github.com/sales-plan/backend/internal/derive"
	"github.com/sales-plan/backend/internal/events"
	"github.com/sales-plan/backend/internal/models"
	"github.com/sales-plan/backend/internal/repositories"
	"go.uber.org/zap"
)

var (
	ErrMonthNotFound  = errors.New("month not found")
	ErrOfferNotFound  = errors.New("offer not found")
	ErrRecordNotFound = errors.New("record not found")
)

// PlanService owns the in-memory plan and runs the reconciliation engine
// around every mutation. All access is serialized behind one mutex: the plan
// is read and written as a single atomic document, and last-write-wins
// across sessions is the accepted model.
//
// Persistence is write-through and non-fatal: the redis mirror is written on
// every change unconditionally, the postgres save is attempted, and a failed
// save is logged while the in-memory state stays authoritative. The next
// successful save flushes it.
type PlanService struct {
	mu        sync.Mutex
	plan      *models.Plan
	planRepo  *repositories.PlanRepo
	mirror    *repositories.MirrorRepo
	auditRepo *repositories.AuditRepo
	publisher events.Publisher
	cfg       *config.Config
	log       *zap.Logger
}

func NewPlanService(
	planRepo *repositories.PlanRepo,
	mirror *repositories.MirrorRepo,
	auditRepo *repositories.AuditRepo,
	publisher events.Publisher,
	cfg *config.Config,
	log *zap.Logger,
) *PlanService {
	return &PlanService{
		planRepo:  planRepo,
		mirror:    mirror,
		auditRepo: auditRepo,
		publisher: publisher,
		cfg:       cfg,
		log:       log,
	}
}

// Load initializes the in-memory plan: postgres first, the redis mirror when
// postgres fails or is empty, the bundled default dataset as the last
// resort. Unpopulated record sets are then seeded once and the result
// persisted.
func (s *PlanService) Load(ctx context.Context) error {
	plan, err := s.planRepo.Load(ctx)
	if err != nil {
		s.log.Error("plan load from postgres failed, trying mirror", zap.Error(err))
	}
	if plan == nil {
		plan, err = s.mirror.Read(ctx)
		if err != nil {
			s.log.Error("plan load from mirror failed, using default dataset", zap.Error(err))
		}
	}
	if plan == nil {
		plan = models.DefaultPlan(s.cfg.PlanYear)
		s.log.Info("seeding default plan", zap.Int("year", s.cfg.PlanYear))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.plan = plan

	changed := false
	for i := range s.plan.Months {
		if derive.SeedMonth(&s.plan.Months[i], s.plan.Year).Changed() {
			changed = true
		}
	}
	if s.selfHealLocked() {
		changed = true
	}
	if changed {
		s.persistLocked(ctx, "plan_seeded", "plan", "", "", "system")
	}
	return nil
}

// Snapshot returns a deep copy of the current plan, self-healing duplicate
// timeline rows on the way out. If healing shortened anything the cleaned
// plan is persisted silently.
func (s *PlanService) Snapshot(ctx context.Context) (*models.Plan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selfHealLocked() {
		s.persistLocked(ctx, "timeline_deduped", "plan", "", "", "system")
	}
	return s.plan.Clone()
}

// Month returns a deep copy of one month.
func (s *PlanService) Month(ctx context.Context, monthID string) (*models.Month, error) {
	plan, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	m := plan.FindMonth(monthID)
	if m == nil {
		return nil, ErrMonthNotFound
	}
	return m, nil
}

// ReplacePlan swaps in a whole document (the admin "set everything" path),
// seeding any months that arrive uninitialized.
func (s *PlanService) ReplacePlan(ctx context.Context, plan *models.Plan, sessionID string) error {
	if plan.Year == 0 {
		plan.Year = s.cfg.PlanYear
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.plan = plan
	for i := range s.plan.Months {
		derive.SeedMonth(&s.plan.Months[i], s.plan.Year)
	}
	s.selfHealLocked()
	s.persistLocked(ctx, "plan_replaced", "plan", "", sessionID, "admin")
	return nil
}

// ClearPlan deletes all persisted data and resets to the default dataset.
func (s *PlanService) ClearPlan(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.planRepo.Clear(ctx); err != nil {
		s.log.Error("plan clear failed", zap.Error(err))
	}
	if err := s.mirror.Clear(ctx); err != nil {
		s.log.Error("mirror clear failed", zap.Error(err))
	}

	// Reset to the default dataset in memory without re-persisting it: the
	// point of clear is that storage ends up empty. The next mutation will
	// write the then-current state back.
	s.plan = models.DefaultPlan(s.cfg.PlanYear)
	for i := range s.plan.Months {
		derive.SeedMonth(&s.plan.Months[i], s.plan.Year)
	}
	_ = s.auditRepo.Log(ctx, models.AuditLog{
		SessionID:  sessionID,
		ActorType:  "admin",
		Action:     "plan_cleared",
		EntityType: "plan",
	})
	_ = s.publisher.Publish(ctx, events.StreamPlan, events.Event{
		Type:    events.EventPlanCleared,
		Payload: map[string]any{},
	})
	return nil
}

// UpdateMonth changes a month's name/theme. Theme feeds generated messaging
// but is not a watched field: existing derived records keep their old copy
// until the next watched change re-derives them.
func (s *PlanService) UpdateMonth(ctx context.Context, monthID string, name, theme *string, sessionID string) (*models.Month, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := s.plan.FindMonth(monthID)
	if m == nil {
		return nil, ErrMonthNotFound
	}
	if name != nil {
		m.Name = *name
	}
	if theme != nil {
		m.Theme = *theme
	}
	s.persistLocked(ctx, "month_updated", "month", monthID, sessionID, "admin")
	return s.cloneMonthLocked(monthID)
}

// CreateOffer adds an offer to a month and reconciles derived records.
func (s *PlanService) CreateOffer(ctx context.Context, monthID string, offer models.Offer, sessionID string) (*models.Offer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := s.plan.FindMonth(monthID)
	if m == nil {
		return nil, ErrMonthNotFound
	}

	offer.ID = uuid.New().String()
	before := derive.OffersFingerprint(m.Offers)
	m.Offers = append(m.Offers, offer)
	s.reconcileIfWatchedChanged(m, before)

	s.persistLocked(ctx, "offer_created", "offer", offer.ID, sessionID, "admin")
	return &offer, nil
}

// UpdateOffer replaces an offer's mutable fields in place. The id is
// immutable. Derived records are recomputed only when a watched field
// (channel or type flags) actually changed.
func (s *PlanService) UpdateOffer(ctx context.Context, monthID, offerID string, upd models.Offer, sessionID string) (*models.Offer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := s.plan.FindMonth(monthID)
	if m == nil {
		return nil, ErrMonthNotFound
	}
	o := m.FindOffer(offerID)
	if o == nil {
		return nil, ErrOfferNotFound
	}

	before := derive.OffersFingerprint(m.Offers)
	upd.ID = o.ID
	*o = upd
	s.reconcileIfWatchedChanged(m, before)

	s.persistLocked(ctx, "offer_updated", "offer", offerID, sessionID, "admin")
	out := *o
	return &out, nil
}

// DeleteOffer removes an offer. Reconciliation drops its derived records;
// manually created rows naming the offer are left as they are.
func (s *PlanService) DeleteOffer(ctx context.Context, monthID, offerID string, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := s.plan.FindMonth(monthID)
	if m == nil {
		return ErrMonthNotFound
	}

	before := derive.OffersFingerprint(m.Offers)
	found := false
	for i := range m.Offers {
		if m.Offers[i].ID == offerID {
			m.Offers = append(m.Offers[:i], m.Offers[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		return ErrOfferNotFound
	}
	s.reconcileIfWatchedChanged(m, before)

	s.persistLocked(ctx, "offer_deleted", "offer", offerID, sessionID, "admin")
	return nil
}

// reconcileIfWatchedChanged runs the engine when the watched offer
// fingerprint moved or a record set is still unpopulated. Called with the
// mutex held.
func (s *PlanService) reconcileIfWatchedChanged(m *models.Month, before string) {
	after := derive.OffersFingerprint(m.Offers)
	if after == before && m.MarketingCollateral.Populated() && m.CRMTimeline.Populated() {
		return
	}
	res := derive.ReconcileMonth(m, s.plan.Year)
	if res.Changed() {
		s.log.Info("month reconciled",
			zap.String("month", m.ID),
			zap.Bool("collateral", res.CollateralChanged),
			zap.Bool("timeline", res.TimelineChanged),
		)
	}
}

// --- Manual collateral mutations. These are explicit user overrides: they
// never trigger derivation and always leave the set populated.

func (s *PlanService) AddCollateral(ctx context.Context, monthID string, rec models.MarketingCollateral, sessionID string) (*models.MarketingCollateral, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := s.plan.FindMonth(monthID)
	if m == nil {
		return nil, ErrMonthNotFound
	}

	rec.ID = uuid.New().String()
	m.MarketingCollateral = models.PopulatedSet(append(m.MarketingCollateral.Records(), rec))

	s.persistLocked(ctx, "collateral_added", "collateral", rec.ID, sessionID, "admin")
	return &rec, nil
}

func (s *PlanService) UpdateCollateral(ctx context.Context, monthID, recordID string, patch models.CollateralPatch, sessionID string) (*models.MarketingCollateral, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := s.plan.FindMonth(monthID)
	if m == nil {
		return nil, ErrMonthNotFound
	}

	records := m.MarketingCollateral.Records()
	for i := range records {
		if records[i].ID == recordID {
			patch.Apply(&records[i])
			m.MarketingCollateral = models.PopulatedSet(records)
			s.persistLocked(ctx, "collateral_updated", "collateral", recordID, sessionID, "admin")
			out := records[i]
			return &out, nil
		}
	}
	return nil, ErrRecordNotFound
}

func (s *PlanService) DeleteCollateral(ctx context.Context, monthID, recordID string, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := s.plan.FindMonth(monthID)
	if m == nil {
		return ErrMonthNotFound
	}

	records := m.MarketingCollateral.Records()
	for i := range records {
		if records[i].ID == recordID {
			m.MarketingCollateral = models.PopulatedSet(append(records[:i], records[i+1:]...))
			s.persistLocked(ctx, "collateral_deleted", "collateral", recordID, sessionID, "admin")
			return nil
		}
	}
	return ErrRecordNotFound
}

// ClearCollateral empties the set but keeps it populated: a deliberate
// user clear must not be mistaken for "never initialized".
func (s *PlanService) ClearCollateral(ctx context.Context, monthID string, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := s.plan.FindMonth(monthID)
	if m == nil {
		return ErrMonthNotFound
	}
	m.MarketingCollateral = models.PopulatedSet([]models.MarketingCollateral{})
	s.persistLocked(ctx, "collateral_cleared", "month", monthID, sessionID, "admin")
	return nil
}

func (s *PlanService) SetCollateral(ctx context.Context, monthID string, records []models.MarketingCollateral, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := s.plan.FindMonth(monthID)
	if m == nil {
		return ErrMonthNotFound
	}
	for i := range records {
		if records[i].ID == "" {
			records[i].ID = uuid.New().String()
		}
	}
	m.MarketingCollateral = models.PopulatedSet(records)
	s.persistLocked(ctx, "collateral_set", "month", monthID, sessionID, "admin")
	return nil
}

// --- Manual timeline mutations, same contract as collateral.

func (s *PlanService) AddTimeline(ctx context.Context, monthID string, rec models.CRMTimeline, sessionID string) (*models.CRMTimeline, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := s.plan.FindMonth(monthID)
	if m == nil {
		return nil, ErrMonthNotFound
	}

	rec.ID = uuid.New().String()
	m.CRMTimeline = models.PopulatedSet(append(m.CRMTimeline.Records(), rec))

	s.persistLocked(ctx, "timeline_added", "timeline", rec.ID, sessionID, "admin")
	return &rec, nil
}

func (s *PlanService) UpdateTimeline(ctx context.Context, monthID, recordID string, patch models.TimelinePatch, sessionID string) (*models.CRMTimeline, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := s.plan.FindMonth(monthID)
	if m == nil {
		return nil, ErrMonthNotFound
	}

	records := m.CRMTimeline.Records()
	for i := range records {
		if records[i].ID == recordID {
			patch.Apply(&records[i])
			m.CRMTimeline = models.PopulatedSet(records)
			s.persistLocked(ctx, "timeline_updated", "timeline", recordID, sessionID, "admin")
			out := records[i]
			return &out, nil
		}
	}
	return nil, ErrRecordNotFound
}

func (s *PlanService) DeleteTimeline(ctx context.Context, monthID, recordID string, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := s.plan.FindMonth(monthID)
	if m == nil {
		return ErrMonthNotFound
	}

	records := m.CRMTimeline.Records()
	for i := range records {
		if records[i].ID == recordID {
			m.CRMTimeline = models.PopulatedSet(append(records[:i], records[i+1:]...))
			s.persistLocked(ctx, "timeline_deleted", "timeline", recordID, sessionID, "admin")
			return nil
		}
	}
	return ErrRecordNotFound
}

func (s *PlanService) ClearTimeline(ctx context.Context, monthID string, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := s.plan.FindMonth(monthID)
	if m == nil {
		return ErrMonthNotFound
	}
	m.CRMTimeline = models.PopulatedSet([]models.CRMTimeline{})
	s.persistLocked(ctx, "timeline_cleared", "month", monthID, sessionID, "admin")
	return nil
}

func (s *PlanService) SetTimeline(ctx context.Context, monthID string, records []models.CRMTimeline, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := s.plan.FindMonth(monthID)
	if m == nil {
		return ErrMonthNotFound
	}
	for i := range records {
		if records[i].ID == "" {
			records[i].ID = uuid.New().String()
		}
	}
	m.CRMTimeline = models.PopulatedSet(records)
	s.persistLocked(ctx, "timeline_set", "month", monthID, sessionID, "admin")
	return nil
}

// Sweep is the worker entry point: seed anything uninitialized and heal
// duplicate timeline rows, persisting only when something moved. Populated
// sets are not signature-rewritten here; no watched field has changed.
func (s *PlanService) Sweep(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed := false
	for i := range s.plan.Months {
		if derive.SeedMonth(&s.plan.Months[i], s.plan.Year).Changed() {
			changed = true
		}
	}
	if s.selfHealLocked() {
		changed = true
	}
	if changed {
		s.persistLocked(ctx, "plan_swept", "plan", "", "", "worker")
	}
	return changed
}

// selfHealLocked dedupes every populated timeline in place and reports
// whether any month shrank.
func (s *PlanService) selfHealLocked() bool {
	healed := false
	for i := range s.plan.Months {
		m := &s.plan.Months[i]
		if !m.CRMTimeline.Populated() {
			continue
		}
		deduped := derive.DedupeTimeline(m.CRMTimeline.Records())
		if len(deduped) < m.CRMTimeline.Len() {
			s.log.Info("healed duplicate timeline rows",
				zap.String("month", m.ID),
				zap.Int("removed", m.CRMTimeline.Len()-len(deduped)),
			)
			m.CRMTimeline = models.PopulatedSet(deduped)
			healed = true
		}
	}
	return healed
}

// persistLocked is the single write path: mirror unconditionally, postgres
// best-effort, audit, event. Failures are logged and never surfaced; the
// in-memory plan stays the source of truth. Called with the mutex held.
func (s *PlanService) persistLocked(ctx context.Context, action, entityType, entityID, sessionID, actorType string) {
	if err := s.mirror.Write(ctx, s.plan); err != nil {
		s.log.Error("mirror write failed", zap.Error(err))
	}
	if err := s.planRepo.Save(ctx, s.plan); err != nil {
		s.log.Error("plan save failed, keeping in-memory state", zap.Error(err), zap.String("action", action))
	}
	_ = s.auditRepo.Log(ctx, models.AuditLog{
		SessionID:  sessionID,
		ActorType:  actorType,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
	})
	_ = s.publisher.Publish(ctx, events.StreamPlan, events.Event{
		Type:    events.EventPlanUpdated,
		Payload: map[string]any{"action": action, "entity_type": entityType, "entity_id": entityID},
	})
}

func (s *PlanService) cloneMonthLocked(monthID string) (*models.Month, error) {
	plan, err := s.plan.Clone()
	if err != nil {
		return nil, err
	}
	m := plan.FindMonth(monthID)
	if m == nil {
		return nil, ErrMonthNotFound
	}
	return m, nil
}
