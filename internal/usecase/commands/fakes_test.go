//go:build unit

package commands_test

import (
	"context"
	"time"

	"clubtab/internal/domain/booking"
	"clubtab/internal/domain/drink"
	"clubtab/internal/domain/member"
	"clubtab/internal/domain/payment"
	"clubtab/internal/infra"
	"clubtab/internal/infra/db"
	"clubtab/internal/usecase/shared"

	"github.com/google/uuid"
)

// fakeState is an in-memory stand-in for the database. Within copies it,
// runs the transaction body on the copy and commits by swapping the copy in,
// so a failed transaction leaves the observable state untouched exactly like
// a rolled-back Postgres transaction would.
type fakeState struct {
	drinks     map[uuid.UUID]*shared.DrinkSnapshot
	members    map[uuid.UUID]*shared.MemberSnapshot
	lines      map[uuid.UUID]*shared.LineSnapshot
	payments   map[uuid.UUID]*shared.PaymentSnapshot
	purchases  []shared.PurchaseRecord
	stockUnits map[uuid.UUID]int64
	pins       map[uuid.UUID]string
	pool       int32
	lineOrder  []uuid.UUID

	// forceDuplicate makes every member insert/PIN update fail with a
	// duplicate-key error, simulating endless PIN collisions.
	forceDuplicate bool
}

func newFakeState() *fakeState {
	return &fakeState{
		drinks:     make(map[uuid.UUID]*shared.DrinkSnapshot),
		members:    make(map[uuid.UUID]*shared.MemberSnapshot),
		lines:      make(map[uuid.UUID]*shared.LineSnapshot),
		payments:   make(map[uuid.UUID]*shared.PaymentSnapshot),
		stockUnits: make(map[uuid.UUID]int64),
		pins:       make(map[uuid.UUID]string),
	}
}

func (s *fakeState) clone() *fakeState {
	c := newFakeState()
	for k, v := range s.drinks {
		cp := *v
		c.drinks[k] = &cp
	}
	for k, v := range s.members {
		cp := *v
		c.members[k] = &cp
	}
	for k, v := range s.lines {
		cp := *v
		c.lines[k] = &cp
	}
	for k, v := range s.payments {
		cp := *v
		c.payments[k] = &cp
	}
	for k, v := range s.stockUnits {
		c.stockUnits[k] = v
	}
	for k, v := range s.pins {
		c.pins[k] = v
	}
	c.purchases = append(c.purchases, s.purchases...)
	c.lineOrder = append(c.lineOrder, s.lineOrder...)
	c.pool = s.pool
	c.forceDuplicate = s.forceDuplicate
	return c
}

func (s *fakeState) addDrink(snap *shared.DrinkSnapshot) {
	s.drinks[snap.ID] = snap
}

func (s *fakeState) addMember(snap *shared.MemberSnapshot) {
	s.members[snap.ID] = snap
}

func (s *fakeState) addLine(snap *shared.LineSnapshot) {
	s.lines[snap.ID] = snap
	s.lineOrder = append(s.lineOrder, snap.ID)
}

func notFoundErr(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

func duplicateErr(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindDuplicateKey)
}

func conflictErr(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindConflict)
}

// fakeUow implements shared.UnitOfWork against fakeState.
type fakeUow struct {
	state *fakeState
}

func newFakeUow(state *fakeState) *fakeUow {
	return &fakeUow{state: state}
}

func (u *fakeUow) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	work := u.state.clone()
	if err := fn(ctx, &fakeTx{state: work}); err != nil {
		return err
	}
	u.state = work
	return nil
}

func (u *fakeUow) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUow) CommandReads() shared.CommandReads {
	return &fakeReads{state: u.state}
}

type fakeTx struct {
	state *fakeState
}

func (t *fakeTx) Lines() shared.LineRepository         { return &fakeLineRepo{state: t.state} }
func (t *fakeTx) Members() shared.MemberRepository     { return &fakeMemberRepo{state: t.state} }
func (t *fakeTx) Drinks() shared.DrinkRepository       { return &fakeDrinkRepo{state: t.state} }
func (t *fakeTx) Payments() shared.PaymentRepository   { return &fakePaymentRepo{state: t.state} }
func (t *fakeTx) Purchases() shared.PurchaseRepository { return &fakePurchaseRepo{state: t.state} }
func (t *fakeTx) Ledger() shared.LedgerRepository      { return &fakeLedger{state: t.state} }
func (t *fakeTx) Reads() shared.CommandReads           { return &fakeReads{state: t.state} }
func (t *fakeTx) DB() db.DBTX                          { return nil }

type fakeReads struct {
	state *fakeState
}

func (r *fakeReads) DrinkByID(_ context.Context, id uuid.UUID) (*shared.DrinkSnapshot, error) {
	snap, ok := r.state.drinks[id]
	if !ok {
		return nil, notFoundErr("drink not found")
	}
	cp := *snap
	return &cp, nil
}

func (r *fakeReads) MemberByID(_ context.Context, id uuid.UUID) (*shared.MemberSnapshot, error) {
	snap, ok := r.state.members[id]
	if !ok {
		return nil, notFoundErr("member not found")
	}
	cp := *snap
	return &cp, nil
}

func (r *fakeReads) MemberByEmail(_ context.Context, email string) (*shared.MemberSnapshot, error) {
	for _, snap := range r.state.members {
		if snap.Email == email {
			cp := *snap
			return &cp, nil
		}
	}
	return nil, notFoundErr("member not found")
}

func (r *fakeReads) MemberByPIN(_ context.Context, pin string) (*shared.MemberSnapshot, error) {
	for id, snap := range r.state.members {
		if r.state.pins[id] == pin {
			cp := *snap
			return &cp, nil
		}
	}
	return nil, notFoundErr("member not found")
}

func (r *fakeReads) DrinkStockUnits(_ context.Context, drinkID uuid.UUID) (int64, error) {
	if _, ok := r.state.drinks[drinkID]; !ok {
		return 0, notFoundErr("drink not found")
	}
	return r.state.stockUnits[drinkID], nil
}

type fakeLedger struct {
	state *fakeState
}

func (l *fakeLedger) IncrementBalance(_ context.Context, _ db.DBTX, memberID uuid.UUID, amountCents int64) (int64, error) {
	snap, ok := l.state.members[memberID]
	if !ok {
		return 0, notFoundErr("member not found for balance increment")
	}
	snap.OpenBalanceCents += amountCents
	return snap.OpenBalanceCents, nil
}

func (l *fakeLedger) DrawFreePool(_ context.Context, _ db.DBTX, want int32) (int32, int32, error) {
	granted := min(l.state.pool, want)
	l.state.pool -= granted
	return granted, l.state.pool, nil
}

func (l *fakeLedger) AddFreePool(_ context.Context, _ db.DBTX, units int32) (int32, error) {
	l.state.pool += units
	return l.state.pool, nil
}

func (l *fakeLedger) FreePoolRemaining(_ context.Context, _ db.DBTX) (int32, error) {
	return l.state.pool, nil
}

type fakeLineRepo struct {
	state *fakeState
}

func (r *fakeLineRepo) Create(_ context.Context, _ db.DBTX, line *booking.Line) (uuid.UUID, error) {
	r.state.addLine(&shared.LineSnapshot{
		ID:             line.ID(),
		MemberID:       line.MemberID(),
		DrinkID:        line.DrinkID(),
		Kind:           line.Kind(),
		Quantity:       line.Quantity(),
		UnitPriceCents: line.UnitPriceCents(),
		AmountCents:    line.AmountCents(),
		CreatedAt:      time.Now(),
	})
	return line.ID(), nil
}

func (r *fakeLineRepo) ClaimReversal(_ context.Context, _ db.DBTX, lineID uuid.UUID) (*shared.LineSnapshot, error) {
	snap, ok := r.state.lines[lineID]
	if !ok {
		return nil, notFoundErr("ledger line not found")
	}
	if snap.ReversedAt != nil {
		return nil, conflictErr("ledger line already reversed")
	}
	now := time.Now()
	snap.ReversedAt = &now
	cp := *snap
	return &cp, nil
}

type fakeMemberRepo struct {
	state *fakeState
}

func (r *fakeMemberRepo) Create(_ context.Context, _ db.DBTX, m *member.Member) (uuid.UUID, error) {
	if r.state.forceDuplicate {
		return uuid.Nil, duplicateErr("members_pin_key")
	}
	for _, snap := range r.state.members {
		if snap.Email == m.Email().Value() {
			return uuid.Nil, duplicateErr("members_email_key")
		}
	}
	for _, pin := range r.state.pins {
		if pin == m.PIN() {
			return uuid.Nil, duplicateErr("members_pin_key")
		}
	}
	r.state.addMember(&shared.MemberSnapshot{
		ID:               m.ID(),
		Email:            m.Email().Value(),
		DisplayName:      m.DisplayName(),
		PasswordHash:     m.PasswordHash(),
		Role:             m.Role(),
		OpenBalanceCents: m.OpenBalanceCents(),
		IsActive:         m.IsActive(),
	})
	r.state.pins[m.ID()] = m.PIN()
	return m.ID(), nil
}

func (r *fakeMemberRepo) UpdatePIN(_ context.Context, _ db.DBTX, memberID uuid.UUID, pin string) error {
	if r.state.forceDuplicate {
		return duplicateErr("members_pin_key")
	}
	if _, ok := r.state.members[memberID]; !ok {
		return notFoundErr("member not found for pin update")
	}
	r.state.pins[memberID] = pin
	return nil
}

type fakeDrinkRepo struct {
	state *fakeState
}

func (r *fakeDrinkRepo) Create(_ context.Context, _ db.DBTX, d *drink.Drink) (uuid.UUID, error) {
	for _, snap := range r.state.drinks {
		if snap.Name == d.Name() {
			return uuid.Nil, duplicateErr("drinks_name_key")
		}
	}
	r.state.addDrink(&shared.DrinkSnapshot{
		ID:                d.ID(),
		Name:              d.Name(),
		PriceCents:        d.PriceCents(),
		CratePriceCents:   d.CratePriceCents(),
		UnitsPerCrate:     d.UnitsPerCrate(),
		LowStockThreshold: d.LowStockThreshold(),
		IsActive:          d.IsActive(),
	})
	return d.ID(), nil
}

func (r *fakeDrinkRepo) Update(_ context.Context, _ db.DBTX, drinkID uuid.UUID, patch shared.DrinkPatch) error {
	snap, ok := r.state.drinks[drinkID]
	if !ok {
		return notFoundErr("drink not found for update")
	}
	if patch.Name != nil {
		for id, other := range r.state.drinks {
			if id != drinkID && other.Name == *patch.Name {
				return duplicateErr("drinks_name_key")
			}
		}
		snap.Name = *patch.Name
	}
	if patch.PriceCents != nil {
		snap.PriceCents = *patch.PriceCents
	}
	if patch.CratePriceCents != nil {
		snap.CratePriceCents = *patch.CratePriceCents
	}
	if patch.LowStockThreshold != nil {
		snap.LowStockThreshold = *patch.LowStockThreshold
	}
	if patch.IsActive != nil {
		snap.IsActive = *patch.IsActive
	}
	return nil
}

type fakePaymentRepo struct {
	state *fakeState
}

func (r *fakePaymentRepo) Create(_ context.Context, _ db.DBTX, p *payment.Payment) (uuid.UUID, error) {
	r.state.payments[p.ID()] = &shared.PaymentSnapshot{
		ID:          p.ID(),
		MemberID:    p.MemberID(),
		AmountCents: p.AmountCents(),
		Method:      p.Method().String(),
		Verified:    p.Verified(),
	}
	return p.ID(), nil
}

func (r *fakePaymentRepo) ClaimVerification(_ context.Context, _ db.DBTX, paymentID, _ uuid.UUID) (*shared.PaymentSnapshot, error) {
	snap, ok := r.state.payments[paymentID]
	if !ok {
		return nil, notFoundErr("payment not found")
	}
	if snap.Verified {
		return nil, conflictErr("payment already verified")
	}
	snap.Verified = true
	cp := *snap
	return &cp, nil
}

type fakePurchaseRepo struct {
	state *fakeState
}

func (r *fakePurchaseRepo) Create(_ context.Context, _ db.DBTX, p shared.PurchaseRecord) (uuid.UUID, error) {
	r.state.purchases = append(r.state.purchases, p)
	if snap, ok := r.state.drinks[p.DrinkID]; ok {
		r.state.stockUnits[p.DrinkID] += int64(p.Crates * float64(snap.UnitsPerCrate))
	}
	return uuid.New(), nil
}

// fakeAlerter records low-stock notifications.
type fakeAlerter struct {
	calls []alertCall
}

type alertCall struct {
	drinkName  string
	stockUnits int64
	threshold  int32
}

func (a *fakeAlerter) NotifyLowStock(_ context.Context, drinkName string, stockUnits int64, threshold int32) {
	a.calls = append(a.calls, alertCall{drinkName: drinkName, stockUnits: stockUnits, threshold: threshold})
}

// lastLine returns the most recently created line, for asserting on the
// ledger rows a command wrote.
func (s *fakeState) lastLine() *shared.LineSnapshot {
	if len(s.lineOrder) == 0 {
		return nil
	}
	return s.lines[s.lineOrder[len(s.lineOrder)-1]]
}

func (s *fakeState) linesOfKind(kind booking.Kind) []*shared.LineSnapshot {
	var out []*shared.LineSnapshot
	for _, id := range s.lineOrder {
		if s.lines[id].Kind == kind {
			out = append(out, s.lines[id])
		}
	}
	return out
}
