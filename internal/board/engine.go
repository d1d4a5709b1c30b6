package board

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/aksoydem/huntboard-cli/internal/models"
	"github.com/aksoydem/huntboard-cli/internal/store"
)

// DefaultTermID is the term assigned to records written before terms
// existed. The backfill migration in New relies on it.
const DefaultTermID = "default"

// DefaultTermName is the display name of the term created on first run.
const DefaultTermName = "My Cycle"

// Validation errors. A mutator returning one of these has not touched
// state or storage.
var (
	ErrTermNameEmpty    = errors.New("term name must not be empty")
	ErrLastTerm         = errors.New("cannot delete the last remaining term")
	ErrCompanyRequired  = errors.New("company is required")
	ErrPositionRequired = errors.New("position is required")
	ErrInvalidStatus    = errors.New("invalid status")
	ErrInvalidSortMode  = errors.New("invalid sort mode")
)

// BlobStore is the slice of the persistent store the engine needs.
type BlobStore interface {
	Load(key string) (json.RawMessage, bool, error)
	Save(key string, value interface{}) error
}

// Engine owns the canonical in-memory collections and all mutation entry
// points. Every mutator updates memory first, then writes the affected
// blobs synchronously before returning. Persistence failures never fail a
// mutation: the in-memory state stays authoritative for the session and
// the error is reported through the warn callback.
type Engine struct {
	store BlobStore

	terms        []models.Term
	apps         []models.Application
	activeTermID string
	sortMode     models.SortMode

	warn  func(error)
	now   func() int64
	newID func() string
}

// New loads state from the store, applies defaults and the one-time
// termId backfill migration, and returns a ready engine.
func New(st BlobStore) (*Engine, error) {
	e := &Engine{
		store:    st,
		sortMode: models.SortCreatedDesc,
		warn:     func(error) {},
		now:      func() int64 { return time.Now().UnixMilli() },
		newID:    func() string { return uuid.NewString() },
	}
	if err := e.load(); err != nil {
		return nil, err
	}
	return e, nil
}

// SetWarnFunc installs the callback invoked when a persistence write
// fails. The default discards warnings.
func (e *Engine) SetWarnFunc(fn func(error)) {
	if fn != nil {
		e.warn = fn
	}
}

func (e *Engine) load() error {
	if raw, ok, err := e.store.Load(store.KeyTerms); err != nil {
		return err
	} else if ok {
		if err := json.Unmarshal(raw, &e.terms); err != nil {
			return err
		}
	}
	if len(e.terms) == 0 {
		e.terms = []models.Term{{ID: DefaultTermID, Name: DefaultTermName}}
	}

	if raw, ok, err := e.store.Load(store.KeyActiveTerm); err != nil {
		return err
	} else if ok {
		if err := json.Unmarshal(raw, &e.activeTermID); err != nil {
			return err
		}
	}
	// Active term must always reference an existing term.
	if _, ok := e.findTerm(e.activeTermID); !ok {
		e.activeTermID = e.terms[0].ID
	}

	if raw, ok, err := e.store.Load(store.KeyApps); err != nil {
		return err
	} else if ok {
		if err := json.Unmarshal(raw, &e.apps); err != nil {
			return err
		}
	}
	e.migrateApps()

	if raw, ok, err := e.store.Load(store.KeySort); err != nil {
		return err
	} else if ok {
		var mode models.SortMode
		if err := json.Unmarshal(raw, &mode); err != nil {
			return err
		}
		if mode.IsValid() {
			e.sortMode = mode
		}
	}

	return nil
}

// migrateApps backfills termId on collections written before terms
// existed. The shape predicate makes it a no-op on migrated data, so the
// migration runs at most once per store.
func (e *Engine) migrateApps() {
	if len(e.apps) == 0 || e.apps[0].TermID != "" {
		return
	}
	target := DefaultTermID
	if _, ok := e.findTerm(target); !ok {
		target = e.terms[0].ID
	}
	for i := range e.apps {
		e.apps[i].TermID = target
	}
	e.persist(store.KeyApps, e.apps)
}

// persist writes one blob, downgrading failures to a warning.
func (e *Engine) persist(key string, value interface{}) {
	if err := e.store.Save(key, value); err != nil {
		e.warn(err)
	}
}

func (e *Engine) findTerm(id string) (models.Term, bool) {
	for _, t := range e.terms {
		if t.ID == id {
			return t, true
		}
	}
	return models.Term{}, false
}

func (e *Engine) findApp(id string) int {
	for i := range e.apps {
		if e.apps[i].ID == id {
			return i
		}
	}
	return -1
}

// AddTerm appends a new term and makes it active.
func (e *Engine) AddTerm(name string) (models.Term, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Term{}, ErrTermNameEmpty
	}

	term := models.Term{ID: e.newID(), Name: name}
	e.terms = append(e.terms, term)
	e.activeTermID = term.ID

	e.persist(store.KeyTerms, e.terms)
	e.persist(store.KeyActiveTerm, e.activeTermID)
	return term, nil
}

// DeleteActiveTerm removes the active term and every application bound to
// it. The first remaining term becomes active. Deleting the last term is
// always rejected.
func (e *Engine) DeleteActiveTerm() (models.Term, error) {
	if len(e.terms) <= 1 {
		return models.Term{}, ErrLastTerm
	}

	deleted, _ := e.findTerm(e.activeTermID)

	kept := e.terms[:0]
	for _, t := range e.terms {
		if t.ID != e.activeTermID {
			kept = append(kept, t)
		}
	}
	e.terms = kept

	keptApps := e.apps[:0]
	for _, a := range e.apps {
		if a.TermID != e.activeTermID {
			keptApps = append(keptApps, a)
		}
	}
	e.apps = keptApps

	e.activeTermID = e.terms[0].ID

	e.persist(store.KeyTerms, e.terms)
	e.persist(store.KeyApps, e.apps)
	e.persist(store.KeyActiveTerm, e.activeTermID)
	return deleted, nil
}

// SetActiveTerm switches the active term. Unknown ids are a no-op and
// return false.
func (e *Engine) SetActiveTerm(id string) bool {
	if _, ok := e.findTerm(id); !ok {
		return false
	}
	e.activeTermID = id
	e.persist(store.KeyActiveTerm, e.activeTermID)
	return true
}

// SetSortMode changes the global sort mode for all subsequent reads.
func (e *Engine) SetSortMode(mode models.SortMode) error {
	if !mode.IsValid() {
		return ErrInvalidSortMode
	}
	e.sortMode = mode
	e.persist(store.KeySort, e.sortMode)
	return nil
}

// NewApplication carries the fields for AddApplication. Status defaults
// to wishlist when empty.
type NewApplication struct {
	Company      string
	Position     string
	Status       models.Status
	Date         string
	Note         string
	ContactName  string
	ContactEmail string
	ContactLink  string
	FileName     string
}

// AddApplication creates an application bound to the active term.
func (e *Engine) AddApplication(in NewApplication) (models.Application, error) {
	company := strings.TrimSpace(in.Company)
	position := strings.TrimSpace(in.Position)
	if company == "" {
		return models.Application{}, ErrCompanyRequired
	}
	if position == "" {
		return models.Application{}, ErrPositionRequired
	}
	status := in.Status
	if status == "" {
		status = models.StatusWishlist
	}
	if !status.IsValid() {
		return models.Application{}, ErrInvalidStatus
	}

	app := models.Application{
		ID:           e.newID(),
		TermID:       e.activeTermID,
		Company:      company,
		Position:     position,
		Status:       status,
		Date:         in.Date,
		Note:         in.Note,
		CreatedAt:    e.now(),
		ContactName:  in.ContactName,
		ContactEmail: in.ContactEmail,
		ContactLink:  in.ContactLink,
		FileName:     in.FileName,
	}
	e.apps = append(e.apps, app)
	e.persist(store.KeyApps, e.apps)
	return app, nil
}

// ApplicationUpdate carries a field-level merge: nil fields are left
// untouched.
type ApplicationUpdate struct {
	Company      *string
	Position     *string
	Status       *models.Status
	Date         *string
	Note         *string
	ContactName  *string
	ContactEmail *string
	ContactLink  *string
	FileName     *string
}

// UpdateApplication merges the given fields into an existing record.
// Unknown ids are a no-op and return false.
func (e *Engine) UpdateApplication(id string, upd ApplicationUpdate) (bool, error) {
	i := e.findApp(id)
	if i < 0 {
		return false, nil
	}
	if upd.Status != nil && !upd.Status.IsValid() {
		return false, ErrInvalidStatus
	}

	app := &e.apps[i]
	if upd.Company != nil {
		app.Company = *upd.Company
	}
	if upd.Position != nil {
		app.Position = *upd.Position
	}
	if upd.Status != nil {
		app.Status = *upd.Status
	}
	if upd.Date != nil {
		app.Date = *upd.Date
	}
	if upd.Note != nil {
		app.Note = *upd.Note
	}
	if upd.ContactName != nil {
		app.ContactName = *upd.ContactName
	}
	if upd.ContactEmail != nil {
		app.ContactEmail = *upd.ContactEmail
	}
	if upd.ContactLink != nil {
		app.ContactLink = *upd.ContactLink
	}
	if upd.FileName != nil {
		app.FileName = *upd.FileName
	}

	e.persist(store.KeyApps, e.apps)
	return true, nil
}

// SetApplicationStatus updates the status only. It is a no-op (false, no
// write) when the id is unknown or the status already matches, which also
// covers a card dropped back onto its own column.
func (e *Engine) SetApplicationStatus(id string, status models.Status) (bool, error) {
	if !status.IsValid() {
		return false, ErrInvalidStatus
	}
	i := e.findApp(id)
	if i < 0 || e.apps[i].Status == status {
		return false, nil
	}
	e.apps[i].Status = status
	e.persist(store.KeyApps, e.apps)
	return true, nil
}

// MoveCard is the board-gesture entry point: a successful drop resolves
// to exactly one status write.
func (e *Engine) MoveCard(id string, target models.Status) (bool, error) {
	return e.SetApplicationStatus(id, target)
}

// DeleteApplication removes a record by id. Unknown ids are a no-op and
// return false.
func (e *Engine) DeleteApplication(id string) bool {
	i := e.findApp(id)
	if i < 0 {
		return false
	}
	e.apps = append(e.apps[:i], e.apps[i+1:]...)
	e.persist(store.KeyApps, e.apps)
	return true
}
