package services

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ecotrack/wastenexus/models"
)

var errDuplicateEmail = errors.New("duplicate key value violates unique constraint \"users_email_key\" (SQLSTATE 23505)")

// fakeTransactionRepo mirrors the repository's award semantics in memory:
// balance increment and ledger append happen together, and a duplicate
// (user, reference, type) short-circuits to the existing row. The mutex
// stands in for the database transaction's isolation.
type fakeTransactionRepo struct {
	mu           sync.Mutex
	users        map[uint]*models.User
	transactions []models.PointTransaction
}

func newFakeTransactionRepo(users ...*models.User) *fakeTransactionRepo {
	repo := &fakeTransactionRepo{users: make(map[uint]*models.User)}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (r *fakeTransactionRepo) AwardPoints(params models.AwardPointsParams) (*models.PointTransaction, *models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[params.UserID]
	if !ok {
		return nil, nil, gorm.ErrRecordNotFound
	}

	if params.Reference != nil {
		for i := range r.transactions {
			txn := &r.transactions[i]
			if txn.UserID == params.UserID &&
				txn.ReferenceID != nil && *txn.ReferenceID == params.Reference.ID &&
				txn.ReferenceModel != nil && *txn.ReferenceModel == params.Reference.Model &&
				txn.Type == params.Type {
				snapshot := *user
				return txn, &snapshot, nil
			}
		}
	}

	previous := user.TotalPoints
	user.TotalPoints += params.Amount

	metadata := models.JSONB{}
	for k, v := range params.Metadata {
		metadata[k] = v
	}
	metadata["previous_total"] = previous
	metadata["new_total"] = user.TotalPoints

	txn := models.PointTransaction{
		ID:          uuid.New(),
		UserID:      params.UserID,
		Type:        params.Type,
		Amount:      params.Amount,
		Description: params.Description,
		AdminID:     params.AdminID,
		Metadata:    metadata,
		CreatedAt:   time.Now(),
	}
	if params.Reference != nil {
		refID := params.Reference.ID
		refModel := params.Reference.Model
		txn.ReferenceID = &refID
		txn.ReferenceModel = &refModel
	}
	r.transactions = append(r.transactions, txn)
	// callers read the returned user outside the lock, so hand back a copy the
	// same way the real executor hands back its in-transaction read
	snapshot := *user
	return &r.transactions[len(r.transactions)-1], &snapshot, nil
}

func (r *fakeTransactionRepo) GetUserTransactions(userID uint, limit int) ([]models.PointTransaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.PointTransaction
	for i := len(r.transactions) - 1; i >= 0; i-- {
		if r.transactions[i].UserID == userID {
			out = append(out, r.transactions[i])
			if limit > 0 && len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

func (r *fakeTransactionRepo) GetTransactionStats(userID *uint) ([]models.TransactionStat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	byType := make(map[models.TransactionType]*models.TransactionStat)
	var order []models.TransactionType
	for _, txn := range r.transactions {
		if userID != nil && txn.UserID != *userID {
			continue
		}
		stat, ok := byType[txn.Type]
		if !ok {
			stat = &models.TransactionStat{Type: txn.Type}
			byType[txn.Type] = stat
			order = append(order, txn.Type)
		}
		stat.TotalAmount += txn.Amount
		stat.Count++
	}
	stats := make([]models.TransactionStat, 0, len(order))
	for _, t := range order {
		stat := byType[t]
		stat.AvgAmount = float64(stat.TotalAmount) / float64(stat.Count)
		stats = append(stats, *stat)
	}
	return stats, nil
}

func (r *fakeTransactionRepo) GetTransactionByReference(ref models.TransactionReference, txType models.TransactionType) (*models.PointTransaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.transactions {
		txn := &r.transactions[i]
		if txn.ReferenceID != nil && *txn.ReferenceID == ref.ID &&
			txn.ReferenceModel != nil && *txn.ReferenceModel == ref.Model &&
			txn.Type == txType {
			return txn, nil
		}
	}
	return nil, nil
}

func (r *fakeTransactionRepo) SumTransactionsByUserID(userID uint) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	total := 0
	for _, txn := range r.transactions {
		if txn.UserID == userID {
			total += txn.Amount
		}
	}
	return total, nil
}

func (r *fakeTransactionRepo) SumAllTransactions() (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	total := 0
	for _, txn := range r.transactions {
		total += txn.Amount
	}
	return total, nil
}

func (r *fakeTransactionRepo) GetLeaderboard(limit int) ([]models.LeaderboardEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var entries []models.LeaderboardEntry
	for _, u := range r.users {
		entries = append(entries, models.LeaderboardEntry{
			UserID:      u.ID,
			Fullname:    u.Fullname,
			Username:    u.Username,
			TotalPoints: u.TotalPoints,
		})
	}
	return entries, nil
}

type fakeAuthRepo struct {
	users map[uint]*models.User
	roles map[string]*models.Role
}

func newFakeAuthRepo(users ...*models.User) *fakeAuthRepo {
	repo := &fakeAuthRepo{
		users: make(map[uint]*models.User),
		roles: make(map[string]*models.Role),
	}
	for _, name := range []string{models.RoleClient, models.RoleWorker, models.RoleChampion, models.RoleAdmin} {
		repo.roles[name] = &models.Role{ID: uuid.New(), Name: name}
	}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (r *fakeAuthRepo) CreateUser(user *models.User) (*models.User, error) {
	user.ID = uint(len(r.users) + 1)
	r.users[user.ID] = user
	return user, nil
}

func (r *fakeAuthRepo) FindUserByID(id uint) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (r *fakeAuthRepo) FindUserByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeAuthRepo) IsEmailExist(email string) error {
	for _, u := range r.users {
		if u.Email == email {
			return errDuplicateEmail
		}
	}
	return nil
}

func (r *fakeAuthRepo) IsPhoneExist(phone string) error { return nil }

func (r *fakeAuthRepo) UpdateUserProfile(userID uint, details *models.EditProfileRequest) error {
	user, ok := r.users[userID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if details.Fullname != "" {
		user.Fullname = details.Fullname
	}
	if details.Username != "" {
		user.Username = details.Username
	}
	if details.Telephone != "" {
		user.Telephone = details.Telephone
	}
	return nil
}

func (r *fakeAuthRepo) UpdateUserPassword(userID uint, hashedPassword string) error {
	user, ok := r.users[userID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	user.HashedPassword = hashedPassword
	return nil
}

func (r *fakeAuthRepo) SetUserResetToken(email, token string) error {
	user, err := r.FindUserByEmail(email)
	if err != nil {
		return err
	}
	user.ResetToken = token
	return nil
}

func (r *fakeAuthRepo) FindUserByResetToken(token string) (*models.User, error) {
	for _, u := range r.users {
		if u.ResetToken != "" && u.ResetToken == token {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeAuthRepo) GetAllUsers() ([]models.User, error) {
	var out []models.User
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *fakeAuthRepo) GetRoleByName(name string) (*models.Role, error) {
	role, ok := r.roles[name]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return role, nil
}

func (r *fakeAuthRepo) AddToBlacklist(blacklist *models.Blacklist) error { return nil }

func (r *fakeAuthRepo) IsTokenInBlacklist(token string) bool { return false }

type fakeReportRepo struct {
	reports map[uuid.UUID]*models.WasteReport
}

func newFakeReportRepo() *fakeReportRepo {
	return &fakeReportRepo{reports: make(map[uuid.UUID]*models.WasteReport)}
}

func (r *fakeReportRepo) CreateReport(report *models.WasteReport) error {
	if report.ID == uuid.Nil {
		report.ID = uuid.New()
	}
	r.reports[report.ID] = report
	return nil
}

func (r *fakeReportRepo) GetReportByID(reportID uuid.UUID) (*models.WasteReport, error) {
	report, ok := r.reports[reportID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *report
	return &copied, nil
}

func (r *fakeReportRepo) UpdateReport(report *models.WasteReport) error {
	if _, ok := r.reports[report.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.reports[report.ID] = report
	return nil
}

func (r *fakeReportRepo) GetReportsByUserID(userID uint) ([]models.WasteReport, error) {
	var out []models.WasteReport
	for _, report := range r.reports {
		if report.UserID == userID {
			out = append(out, *report)
		}
	}
	return out, nil
}

func (r *fakeReportRepo) GetAllReports(status models.ReportStatus) ([]models.WasteReport, error) {
	var out []models.WasteReport
	for _, report := range r.reports {
		if status == "" || report.Status == status {
			out = append(out, *report)
		}
	}
	return out, nil
}

type fakeJobRepo struct {
	jobs map[uuid.UUID]*models.CollectionJob
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: make(map[uuid.UUID]*models.CollectionJob)}
}

func (r *fakeJobRepo) CreateJob(job *models.CollectionJob) error {
	if job.ID == uuid.Nil {
		job.ID = uuid.New()
	}
	r.jobs[job.ID] = job
	return nil
}

func (r *fakeJobRepo) GetJobByID(jobID uuid.UUID) (*models.CollectionJob, error) {
	job, ok := r.jobs[jobID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *job
	return &copied, nil
}

func (r *fakeJobRepo) UpdateJob(job *models.CollectionJob) error {
	if _, ok := r.jobs[job.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.jobs[job.ID] = job
	return nil
}

func (r *fakeJobRepo) GetJobsByUserID(userID uint) ([]models.CollectionJob, error) {
	var out []models.CollectionJob
	for _, job := range r.jobs {
		if job.UserID == userID {
			out = append(out, *job)
		}
	}
	return out, nil
}

func (r *fakeJobRepo) GetJobsByWorkerID(workerID uint) ([]models.CollectionJob, error) {
	var out []models.CollectionJob
	for _, job := range r.jobs {
		if job.WorkerID != nil && *job.WorkerID == workerID {
			out = append(out, *job)
		}
	}
	return out, nil
}

func (r *fakeJobRepo) GetAllJobs(status models.JobStatus) ([]models.CollectionJob, error) {
	var out []models.CollectionJob
	for _, job := range r.jobs {
		if status == "" || job.Status == status {
			out = append(out, *job)
		}
	}
	return out, nil
}

type fakeMarketplaceRepo struct {
	items map[uuid.UUID]*models.MarketplaceItem
}

func newFakeMarketplaceRepo() *fakeMarketplaceRepo {
	return &fakeMarketplaceRepo{items: make(map[uuid.UUID]*models.MarketplaceItem)}
}

func (r *fakeMarketplaceRepo) CreateItem(item *models.MarketplaceItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	r.items[item.ID] = item
	return nil
}

func (r *fakeMarketplaceRepo) GetItemByID(itemID uuid.UUID) (*models.MarketplaceItem, error) {
	item, ok := r.items[itemID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *item
	return &copied, nil
}

func (r *fakeMarketplaceRepo) UpdateItem(item *models.MarketplaceItem) error {
	if _, ok := r.items[item.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.items[item.ID] = item
	return nil
}

func (r *fakeMarketplaceRepo) GetItemsByUserID(userID uint) ([]models.MarketplaceItem, error) {
	var out []models.MarketplaceItem
	for _, item := range r.items {
		if item.UserID == userID {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (r *fakeMarketplaceRepo) GetAllItems(status models.ItemStatus) ([]models.MarketplaceItem, error) {
	var out []models.MarketplaceItem
	for _, item := range r.items {
		if status == "" || item.Status == status {
			out = append(out, *item)
		}
	}
	return out, nil
}

type fakeEventRepo struct {
	events       map[uuid.UUID]*models.Event
	participants []*models.EventParticipant
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{events: make(map[uuid.UUID]*models.Event)}
}

func (r *fakeEventRepo) CreateEvent(event *models.Event) error {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	r.events[event.ID] = event
	return nil
}

func (r *fakeEventRepo) GetEventByID(eventID uuid.UUID) (*models.Event, error) {
	event, ok := r.events[eventID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *event
	return &copied, nil
}

func (r *fakeEventRepo) UpdateEvent(event *models.Event) error {
	if _, ok := r.events[event.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.events[event.ID] = event
	return nil
}

func (r *fakeEventRepo) GetAllEvents(status models.EventStatus) ([]models.Event, error) {
	var out []models.Event
	for _, event := range r.events {
		if status == "" || event.Status == status {
			out = append(out, *event)
		}
	}
	return out, nil
}

func (r *fakeEventRepo) AddParticipant(participant *models.EventParticipant) error {
	r.participants = append(r.participants, participant)
	return nil
}

func (r *fakeEventRepo) GetParticipant(eventID uuid.UUID, userID uint) (*models.EventParticipant, error) {
	for _, p := range r.participants {
		if p.EventID == eventID && p.UserID == userID {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeEventRepo) UpdateParticipant(participant *models.EventParticipant) error { return nil }

func (r *fakeEventRepo) GetEventParticipants(eventID uuid.UUID) ([]models.EventParticipant, error) {
	var out []models.EventParticipant
	for _, p := range r.participants {
		if p.EventID == eventID {
			out = append(out, *p)
		}
	}
	return out, nil
}

type fakeTaskRepo struct {
	tasks map[uuid.UUID]*models.WorkerTask
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: make(map[uuid.UUID]*models.WorkerTask)}
}

func (r *fakeTaskRepo) CreateTask(task *models.WorkerTask) error {
	if task.ID == uuid.Nil {
		task.ID = uuid.New()
	}
	r.tasks[task.ID] = task
	return nil
}

func (r *fakeTaskRepo) GetTaskByID(taskID uuid.UUID) (*models.WorkerTask, error) {
	task, ok := r.tasks[taskID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *task
	return &copied, nil
}

func (r *fakeTaskRepo) UpdateTask(task *models.WorkerTask) error {
	if _, ok := r.tasks[task.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.tasks[task.ID] = task
	return nil
}

func (r *fakeTaskRepo) GetTasksByWorkerID(workerID uint) ([]models.WorkerTask, error) {
	var out []models.WorkerTask
	for _, task := range r.tasks {
		if task.WorkerID == workerID {
			out = append(out, *task)
		}
	}
	return out, nil
}
