package service

import (
	"context"

	"skillswap/internal/models"
)

type userRepoStub struct {
	createFn        func(context.Context, *models.User) error
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByUsernameFn func(context.Context, string) (*models.User, error)
	updateFn        func(context.Context, *models.User) error
	listFn          func(context.Context, int, int) ([]models.User, error)
	listIDsExceptFn func(context.Context, uint) ([]uint, error)
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.listFn(ctx, limit, offset)
}
func (s *userRepoStub) ListIDsExcept(ctx context.Context, userID uint) ([]uint, error) {
	return s.listIDsExceptFn(ctx, userID)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		createFn: func(context.Context, *models.User) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id}, nil
		},
		getByUsernameFn: func(context.Context, string) (*models.User, error) { return &models.User{}, nil },
		updateFn:        func(context.Context, *models.User) error { return nil },
		listFn:          func(context.Context, int, int) ([]models.User, error) { return nil, nil },
		listIDsExceptFn: func(context.Context, uint) ([]uint, error) { return nil, nil },
	}
}

type friendRepoStub struct {
	createIfAbsentFn     func(context.Context, *models.Friendship) error
	getByIDFn            func(context.Context, uint) (*models.Friendship, error)
	getBetweenUsersFn    func(context.Context, uint, uint) (*models.Friendship, error)
	getFriendsFn         func(context.Context, uint) ([]models.User, error)
	getPendingFn         func(context.Context, uint) ([]models.Friendship, error)
	connectedUserIDsFn   func(context.Context, uint) ([]uint, error)
	updateStatusFn       func(context.Context, uint, models.FriendshipStatus) error
	removeBetweenUsersFn func(context.Context, uint, uint) (bool, error)
}

func (s *friendRepoStub) CreateIfAbsent(ctx context.Context, friendship *models.Friendship) error {
	return s.createIfAbsentFn(ctx, friendship)
}
func (s *friendRepoStub) GetByID(ctx context.Context, id uint) (*models.Friendship, error) {
	return s.getByIDFn(ctx, id)
}
func (s *friendRepoStub) GetBetweenUsers(ctx context.Context, userID1, userID2 uint) (*models.Friendship, error) {
	return s.getBetweenUsersFn(ctx, userID1, userID2)
}
func (s *friendRepoStub) GetFriends(ctx context.Context, userID uint) ([]models.User, error) {
	return s.getFriendsFn(ctx, userID)
}
func (s *friendRepoStub) GetPendingInvolving(ctx context.Context, userID uint) ([]models.Friendship, error) {
	return s.getPendingFn(ctx, userID)
}
func (s *friendRepoStub) ConnectedUserIDs(ctx context.Context, userID uint) ([]uint, error) {
	return s.connectedUserIDsFn(ctx, userID)
}
func (s *friendRepoStub) UpdateStatus(ctx context.Context, friendshipID uint, status models.FriendshipStatus) error {
	return s.updateStatusFn(ctx, friendshipID, status)
}
func (s *friendRepoStub) RemoveBetweenUsers(ctx context.Context, userID1, userID2 uint) (bool, error) {
	return s.removeBetweenUsersFn(ctx, userID1, userID2)
}

func noopFriendRepo() *friendRepoStub {
	return &friendRepoStub{
		createIfAbsentFn: func(context.Context, *models.Friendship) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Friendship, error) {
			return &models.Friendship{ID: id}, nil
		},
		getBetweenUsersFn:    func(context.Context, uint, uint) (*models.Friendship, error) { return nil, nil },
		getFriendsFn:         func(context.Context, uint) ([]models.User, error) { return nil, nil },
		getPendingFn:         func(context.Context, uint) ([]models.Friendship, error) { return nil, nil },
		connectedUserIDsFn:   func(context.Context, uint) ([]uint, error) { return nil, nil },
		updateStatusFn:       func(context.Context, uint, models.FriendshipStatus) error { return nil },
		removeBetweenUsersFn: func(context.Context, uint, uint) (bool, error) { return true, nil },
	}
}

type messageRepoStub struct {
	appendFn          func(context.Context, *models.Message) error
	historyFn         func(context.Context, uint, uint) ([]models.Message, error)
	countFromSenderFn func(context.Context, uint, uint) (int64, error)
}

func (s *messageRepoStub) Append(ctx context.Context, message *models.Message) error {
	return s.appendFn(ctx, message)
}
func (s *messageRepoStub) History(ctx context.Context, userID1, userID2 uint) ([]models.Message, error) {
	return s.historyFn(ctx, userID1, userID2)
}
func (s *messageRepoStub) CountFromSender(ctx context.Context, senderID, receiverID uint) (int64, error) {
	return s.countFromSenderFn(ctx, senderID, receiverID)
}

func noopMessageRepo() *messageRepoStub {
	return &messageRepoStub{
		appendFn:          func(context.Context, *models.Message) error { return nil },
		historyFn:         func(context.Context, uint, uint) ([]models.Message, error) { return nil, nil },
		countFromSenderFn: func(context.Context, uint, uint) (int64, error) { return 0, nil },
	}
}

type profileRepoStub struct {
	getSkillsFn      func(context.Context, uint) ([]models.RatedSkill, error)
	getInterestsFn   func(context.Context, uint) ([]models.RatedSkill, error)
	upsertSkillFn    func(context.Context, uint, uint, models.SkillLevel) error
	upsertInterestFn func(context.Context, uint, uint, models.SkillLevel) error
}

func (s *profileRepoStub) GetSkills(ctx context.Context, userID uint) ([]models.RatedSkill, error) {
	return s.getSkillsFn(ctx, userID)
}
func (s *profileRepoStub) GetInterests(ctx context.Context, userID uint) ([]models.RatedSkill, error) {
	return s.getInterestsFn(ctx, userID)
}
func (s *profileRepoStub) UpsertSkill(ctx context.Context, userID, skillID uint, level models.SkillLevel) error {
	return s.upsertSkillFn(ctx, userID, skillID, level)
}
func (s *profileRepoStub) UpsertInterest(ctx context.Context, userID, skillID uint, level models.SkillLevel) error {
	return s.upsertInterestFn(ctx, userID, skillID, level)
}

func noopProfileRepo() *profileRepoStub {
	return &profileRepoStub{
		getSkillsFn:      func(context.Context, uint) ([]models.RatedSkill, error) { return nil, nil },
		getInterestsFn:   func(context.Context, uint) ([]models.RatedSkill, error) { return nil, nil },
		upsertSkillFn:    func(context.Context, uint, uint, models.SkillLevel) error { return nil },
		upsertInterestFn: func(context.Context, uint, uint, models.SkillLevel) error { return nil },
	}
}

type skillRepoStub struct {
	getAllFn            func(context.Context) ([]models.Skill, error)
	existsFn            func(context.Context, uint) (bool, error)
	countFn             func(context.Context) (int64, error)
	createBatchFn       func(context.Context, []models.Skill) error
	catalogWithLevelsFn func(context.Context, uint) ([]models.SkillWithLevels, error)
}

func (s *skillRepoStub) GetAll(ctx context.Context) ([]models.Skill, error) {
	return s.getAllFn(ctx)
}
func (s *skillRepoStub) Exists(ctx context.Context, skillID uint) (bool, error) {
	return s.existsFn(ctx, skillID)
}
func (s *skillRepoStub) Count(ctx context.Context) (int64, error) {
	return s.countFn(ctx)
}
func (s *skillRepoStub) CreateBatch(ctx context.Context, skills []models.Skill) error {
	return s.createBatchFn(ctx, skills)
}
func (s *skillRepoStub) CatalogWithLevels(ctx context.Context, userID uint) ([]models.SkillWithLevels, error) {
	return s.catalogWithLevelsFn(ctx, userID)
}

func noopSkillRepo() *skillRepoStub {
	return &skillRepoStub{
		getAllFn:            func(context.Context) ([]models.Skill, error) { return nil, nil },
		existsFn:            func(context.Context, uint) (bool, error) { return true, nil },
		countFn:             func(context.Context) (int64, error) { return 0, nil },
		createBatchFn:       func(context.Context, []models.Skill) error { return nil },
		catalogWithLevelsFn: func(context.Context, uint) ([]models.SkillWithLevels, error) { return nil, nil },
	}
}
