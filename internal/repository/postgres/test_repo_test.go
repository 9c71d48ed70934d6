package postgres

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	apperrors "github.com/yourusername/quizcraft-api/internal/pkg/errors"
)

// newMockDB поднимает gorm поверх sqlmock, чтобы проверять реально
// генерируемый SQL. Сопоставление запросов - по регулярным выражениям.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(gormPostgres.New(gormPostgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

var (
	testColumns     = []string{"guid", "title", "is_deleted", "created", "updated", "created_by", "updated_by"}
	questionColumns = []string{"guid", "test_guid", "title", "type", "is_deleted", "created", "updated", "created_by", "updated_by"}
	answerColumns   = []string{"guid", "question_guid", "text", "sub_text", "is_correct", "is_deleted", "created", "updated", "created_by", "updated_by"}
)

// Фильтр по tombstone-флагу обязан присутствовать на каждом уровне
// вложенности: и в выборке теста, и в подзапросах вопросов и ответов.
func TestTestRepo_GetByGUID_FiltersDeletedAtEveryLevel(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTestRepo(db)

	now := time.Now()
	testGUID := uuid.New()
	questionGUID := uuid.New()
	answerGUID := uuid.New()
	actor := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "test" WHERE guid = \$1 AND is_deleted = \$2`).
		WillReturnRows(sqlmock.NewRows(testColumns).
			AddRow(testGUID.String(), "Основы Go", 0, now, now, actor.String(), actor.String()))
	mock.ExpectQuery(`SELECT \* FROM "question" WHERE .*is_deleted = \$\d+`).
		WillReturnRows(sqlmock.NewRows(questionColumns).
			AddRow(questionGUID.String(), testGUID.String(), "Что такое срез?", "single", 0, now, now, actor.String(), actor.String()))
	mock.ExpectQuery(`SELECT \* FROM "answer" WHERE .*is_deleted = \$\d+`).
		WillReturnRows(sqlmock.NewRows(answerColumns).
			AddRow(answerGUID.String(), questionGUID.String(), "Окно над массивом", nil, 1, 0, now, now, actor.String(), actor.String()))

	test, err := repo.GetByGUID(testGUID)
	require.NoError(t, err)

	require.Len(t, test.Questions, 1)
	require.Len(t, test.Questions[0].Answers, 1)
	assert.Equal(t, answerGUID, test.Questions[0].Answers[0].GUID)

	require.NoError(t, mock.ExpectationsWereMet())
}

// Тест, все вопросы которого удалены, остается видимым сам по себе,
// но возвращается с пустой коллекцией вопросов
func TestTestRepo_GetByGUID_AllQuestionsDeletedReturnsEmptyCollection(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTestRepo(db)

	now := time.Now()
	testGUID := uuid.New()
	actor := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "test" WHERE guid = \$1 AND is_deleted = \$2`).
		WillReturnRows(sqlmock.NewRows(testColumns).
			AddRow(testGUID.String(), "Основы Go", 0, now, now, actor.String(), actor.String()))
	// Все вопросы отфильтрованы tombstone-условием: подзапрос пуст,
	// запрос ответов при этом вообще не выполняется
	mock.ExpectQuery(`SELECT \* FROM "question" WHERE .*is_deleted = \$\d+`).
		WillReturnRows(sqlmock.NewRows(questionColumns))

	test, err := repo.GetByGUID(testGUID)
	require.NoError(t, err)
	assert.Empty(t, test.Questions)

	require.NoError(t, mock.ExpectationsWereMet())
}

// Удаленный тест неотличим от несуществующего
func TestTestRepo_GetByGUID_TombstonedNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTestRepo(db)

	mock.ExpectQuery(`SELECT \* FROM "test" WHERE guid = \$1 AND is_deleted = \$2`).
		WillReturnRows(sqlmock.NewRows(testColumns))

	_, err := repo.GetByGUID(uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))

	require.NoError(t, mock.ExpectationsWereMet())
}

// Удаление выполняется как UPDATE tombstone-флага: строка остается в таблице
func TestTestRepo_Delete_PreservesRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTestRepo(db)

	guid := uuid.New()
	actor := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "test" SET .*"is_deleted"=\$\d+.* WHERE guid = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Delete(actor, guid))

	// Ни одного DELETE не ожидалось и не было выполнено
	require.NoError(t, mock.ExpectationsWereMet())
}

// Страницы выборки не пересекаются: limit/offset уходят в SQL,
// живут только строки с is_deleted = 0
func TestTestRepo_List_PagesAreDisjoint(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTestRepo(db)

	now := time.Now()
	actor := uuid.New()
	first := uuid.New()
	second := uuid.New()
	third := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "test" WHERE is_deleted = \$1 ORDER BY created LIMIT`).
		WillReturnRows(sqlmock.NewRows(testColumns).
			AddRow(first.String(), "Первый", 0, now, now, actor.String(), actor.String()).
			AddRow(second.String(), "Второй", 0, now, now, actor.String(), actor.String()))
	mock.ExpectQuery(`SELECT \* FROM "question" WHERE .*is_deleted = \$\d+`).
		WillReturnRows(sqlmock.NewRows(questionColumns))

	pageOne, err := repo.List(nil, 2, 0)
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT \* FROM "test" WHERE is_deleted = \$1 ORDER BY created LIMIT .* OFFSET`).
		WillReturnRows(sqlmock.NewRows(testColumns).
			AddRow(third.String(), "Третий", 0, now, now, actor.String(), actor.String()))
	mock.ExpectQuery(`SELECT \* FROM "question" WHERE .*is_deleted = \$\d+`).
		WillReturnRows(sqlmock.NewRows(questionColumns))

	pageTwo, err := repo.List(nil, 2, 2)
	require.NoError(t, err)

	seen := map[uuid.UUID]struct{}{}
	for _, tt := range pageOne {
		seen[tt.GUID] = struct{}{}
	}
	for _, tt := range pageTwo {
		_, dup := seen[tt.GUID]
		assert.False(t, dup, "страницы не должны пересекаться: %s", tt.GUID)
	}
	require.Len(t, pageOne, 2)
	require.Len(t, pageTwo, 1)

	require.NoError(t, mock.ExpectationsWereMet())
}
