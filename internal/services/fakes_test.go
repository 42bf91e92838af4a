package services

import (
	"fmt"
	"time"

	"schoolhub_backend/internal/models"
	"schoolhub_backend/internal/repositories"

	"gorm.io/gorm"
)

// In-memory repositories for service tests. Every method can be forced to
// fail through failWith.

type fakeUserRepo struct {
	users    map[string]*models.User
	failWith error
	nextID   int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{}}
}

func (f *fakeUserRepo) add(user *models.User) *models.User {
	if user.ID == "" {
		f.nextID++
		user.ID = fmt.Sprintf("user-%d", f.nextID)
	}
	if user.Status == "" {
		user.Status = models.UserStatusActive
	}
	f.users[user.ID] = user
	return user
}

func (f *fakeUserRepo) FindByID(db *gorm.DB, id string) (*models.User, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	user, ok := f.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) FindByEmail(db *gorm.DB, email string) (*models.User, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) Create(db *gorm.DB, user *models.User) error {
	if f.failWith != nil {
		return f.failWith
	}
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}
	f.add(user)
	return nil
}

func (f *fakeUserRepo) Update(db *gorm.DB, user *models.User) error {
	if f.failWith != nil {
		return f.failWith
	}
	if _, ok := f.users[user.ID]; !ok {
		return repositories.ErrUserNotFound
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) UpdateStatus(db *gorm.DB, userID string, status models.UserStatus) error {
	if f.failWith != nil {
		return f.failWith
	}
	user, ok := f.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	user.Status = status
	return nil
}

func (f *fakeUserRepo) UpdateLastLogin(db *gorm.DB, userID string) error {
	if f.failWith != nil {
		return f.failWith
	}
	if user, ok := f.users[userID]; ok {
		now := time.Now()
		user.LastLogin = &now
	}
	return nil
}

func (f *fakeUserRepo) FindActiveIDs(db *gorm.DB) ([]string, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var ids []string
	for id, user := range f.users {
		if user.Status == models.UserStatusActive {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (f *fakeUserRepo) FindEmailsByIDs(db *gorm.DB, ids []string) ([]string, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var emails []string
	for _, id := range ids {
		if user, ok := f.users[id]; ok {
			emails = append(emails, user.Email)
		}
	}
	return emails, nil
}

func (f *fakeUserRepo) CountAll(db *gorm.DB) (int64, error) {
	if f.failWith != nil {
		return 0, f.failWith
	}
	return int64(len(f.users)), nil
}

func (f *fakeUserRepo) CountByRole(db *gorm.DB, role models.UserRole) (int64, error) {
	if f.failWith != nil {
		return 0, f.failWith
	}
	var n int64
	for _, user := range f.users {
		if user.Role == role {
			n++
		}
	}
	return n, nil
}

func (f *fakeUserRepo) CountByEmail(db *gorm.DB, email string) (int64, error) {
	if f.failWith != nil {
		return 0, f.failWith
	}
	var n int64
	for _, user := range f.users {
		if user.Email == email {
			n++
		}
	}
	return n, nil
}

type fakeEventRepo struct {
	events   map[string]*models.Event
	failWith error
	nextID   int
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{events: map[string]*models.Event{}}
}

func (f *fakeEventRepo) Create(db *gorm.DB, event *models.Event) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.nextID++
	event.ID = fmt.Sprintf("event-%d", f.nextID)
	f.events[event.ID] = event
	return nil
}

func (f *fakeEventRepo) FindByID(db *gorm.DB, id string) (*models.Event, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	event, ok := f.events[id]
	if !ok {
		return nil, repositories.ErrEventNotFound
	}
	return event, nil
}

func (f *fakeEventRepo) FindAll(db *gorm.DB, limit, offset int) ([]models.Event, int64, error) {
	if f.failWith != nil {
		return nil, 0, f.failWith
	}
	var all []models.Event
	for _, event := range f.events {
		all = append(all, *event)
	}
	return all, int64(len(f.events)), nil
}

func (f *fakeEventRepo) Update(db *gorm.DB, id string, fields map[string]interface{}) (*models.Event, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	event, ok := f.events[id]
	if !ok {
		return nil, repositories.ErrEventNotFound
	}
	if title, ok := fields["title"].(string); ok {
		event.Title = title
	}
	if start, ok := fields["start_date"].(time.Time); ok {
		event.StartDate = start
	}
	if end, ok := fields["end_date"].(time.Time); ok {
		event.EndDate = end
	}
	if color, ok := fields["color"].(string); ok {
		event.Color = color
	}
	return event, nil
}

func (f *fakeEventRepo) Delete(db *gorm.DB, id string) error {
	if f.failWith != nil {
		return f.failWith
	}
	if _, ok := f.events[id]; !ok {
		return repositories.ErrEventNotFound
	}
	delete(f.events, id)
	return nil
}

func (f *fakeEventRepo) CountAll(db *gorm.DB) (int64, error) {
	if f.failWith != nil {
		return 0, f.failWith
	}
	return int64(len(f.events)), nil
}

func (f *fakeEventRepo) CountUpcoming(db *gorm.DB) (int64, error) {
	if f.failWith != nil {
		return 0, f.failWith
	}
	var n int64
	for _, event := range f.events {
		if event.StartDate.After(time.Now()) {
			n++
		}
	}
	return n, nil
}

func (f *fakeEventRepo) CountCreatedBy(db *gorm.DB, userID string) (int64, error) {
	if f.failWith != nil {
		return 0, f.failWith
	}
	var n int64
	for _, event := range f.events {
		if event.CreatedBy != nil && *event.CreatedBy == userID {
			n++
		}
	}
	return n, nil
}

type fakeNotificationRepo struct {
	notifications map[string]*models.Notification
	deliveries    map[string][]string // notificationID -> userIDs
	read          map[string]bool     // notificationID+userID -> read
	failWith      error
	fanOutErr     error
	nextID        int
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{
		notifications: map[string]*models.Notification{},
		deliveries:    map[string][]string{},
		read:          map[string]bool{},
	}
}

func (f *fakeNotificationRepo) deliveryKey(notificationID, userID string) string {
	return notificationID + "|" + userID
}

func (f *fakeNotificationRepo) Create(db *gorm.DB, notification *models.Notification) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.nextID++
	notification.ID = fmt.Sprintf("notification-%d", f.nextID)
	f.notifications[notification.ID] = notification
	return nil
}

func (f *fakeNotificationRepo) FanOut(db *gorm.DB, notificationID string, userIDs []string) error {
	if f.fanOutErr != nil {
		return f.fanOutErr
	}
	if f.failWith != nil {
		return f.failWith
	}
	f.deliveries[notificationID] = append(f.deliveries[notificationID], userIDs...)
	return nil
}

func (f *fakeNotificationRepo) FindForUser(db *gorm.DB, userID string, limit int) ([]repositories.NotificationWithState, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var rows []repositories.NotificationWithState
	for notificationID, userIDs := range f.deliveries {
		for _, id := range userIDs {
			if id != userID {
				continue
			}
			n := f.notifications[notificationID]
			rows = append(rows, repositories.NotificationWithState{
				ID:      n.ID,
				Title:   n.Title,
				Message: n.Message,
				Type:    n.Type,
				IsRead:  f.read[f.deliveryKey(notificationID, userID)],
			})
		}
	}
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

func (f *fakeNotificationRepo) UnreadCount(db *gorm.DB, userID string) (int64, error) {
	if f.failWith != nil {
		return 0, f.failWith
	}
	var n int64
	for notificationID, userIDs := range f.deliveries {
		for _, id := range userIDs {
			if id == userID && !f.read[f.deliveryKey(notificationID, userID)] {
				n++
			}
		}
	}
	return n, nil
}

func (f *fakeNotificationRepo) MarkRead(db *gorm.DB, notificationID, userID string) error {
	if f.failWith != nil {
		return f.failWith
	}
	for _, id := range f.deliveries[notificationID] {
		if id == userID {
			f.read[f.deliveryKey(notificationID, userID)] = true
			return nil
		}
	}
	return repositories.ErrNotificationNotFound
}

func (f *fakeNotificationRepo) MarkAllRead(db *gorm.DB, userID string) error {
	if f.failWith != nil {
		return f.failWith
	}
	for notificationID, userIDs := range f.deliveries {
		for _, id := range userIDs {
			if id == userID {
				f.read[f.deliveryKey(notificationID, userID)] = true
			}
		}
	}
	return nil
}
