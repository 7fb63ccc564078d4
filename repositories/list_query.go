package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/naturetrails/trails-backend/models"
	"github.com/naturetrails/trails-backend/pure_utils"
)

// ListFilter narrows a listing query with request-specific predicates. It
// returns the narrowed query, or nil to signal that no filtering occurred, in
// which case the filtered count equals the total count.
type ListFilter func(query squirrel.SelectBuilder) *squirrel.SelectBuilder

// RelationLoader attaches related records onto an already fetched page,
// batching the lookup in one query instead of one per record.
type RelationLoader[Model any] func(ctx context.Context, exec Executor, records []Model) ([]Model, error)

type sortCriterion struct {
	name   string
	column string
}

// ListQuery composes, in a fixed order, everything needed to answer a list
// request: scope conditions, an optional filter, named sort criteria, and the
// pagination window. It is built by one request handler and consumed exactly
// once by FetchListPage.
type ListQuery struct {
	selectQuery squirrel.SelectBuilder
	countQuery  squirrel.SelectBuilder

	filter           ListFilter
	sortCriteria     []sortCriterion
	defaultSortName  string
	defaultSortOrder models.SortingOrder
	sortParam        string

	paginated bool
	page      models.PageRequest
}

func NewListQuery(columns []string, from string) *ListQuery {
	return &ListQuery{
		selectQuery: NewQueryBuilder().Select(columns...).From(from),
		countQuery:  NewQueryBuilder().Select("count(*)").From(from),
	}
}

// Where adds a scope condition to both the fetch and the count queries.
func (q *ListQuery) Where(pred any, args ...any) *ListQuery {
	q.selectQuery = q.selectQuery.Where(pred, args...)
	q.countQuery = q.countQuery.Where(pred, args...)
	return q
}

// Join adds a join clause to both the fetch and the count queries.
func (q *ListQuery) Join(join string, args ...any) *ListQuery {
	q.selectQuery = q.selectQuery.Join(join, args...)
	q.countQuery = q.countQuery.Join(join, args...)
	return q
}

// Filter registers the single filter function of this query.
func (q *ListQuery) Filter(filter ListFilter) *ListQuery {
	q.filter = filter
	return q
}

// Paginate marks the query as paginated with the given effective window, which
// also makes FetchListPage compute the total and filtered counts.
func (q *ListQuery) Paginate(page models.PageRequest) *ListQuery {
	q.paginated = true
	q.page = page
	return q
}

// SortOn registers a named sort criterion bound to an explicit column.
func (q *ListQuery) SortOn(name, column string) *ListQuery {
	q.sortCriteria = append(q.sortCriteria, sortCriterion{name: name, column: column})
	return q
}

// Sorts registers sort criteria whose column is the snake_case form of the
// criterion name.
func (q *ListQuery) Sorts(names ...string) *ListQuery {
	for _, name := range names {
		q.SortOn(name, pure_utils.ToSnakeCase(name))
	}
	return q
}

// DefaultSort sets the criterion applied when the request carries no sort
// parameter or names an unregistered criterion.
func (q *ListQuery) DefaultSort(name string, order models.SortingOrder) *ListQuery {
	q.defaultSortName = name
	q.defaultSortOrder = order
	return q
}

// SortParam feeds the raw sort query parameter into the query.
func (q *ListQuery) SortParam(raw string) *ListQuery {
	q.sortParam = raw
	return q
}

func (q *ListQuery) criterionByName(name string) (sortCriterion, bool) {
	for _, criterion := range q.sortCriteria {
		if criterion.name == name {
			return criterion, true
		}
	}
	return sortCriterion{}, false
}

// applySort resolves the sort parameter against the registered criteria. An
// unregistered name falls back to the default criterion, never an error, so
// that older clients sending unknown sort keys keep working.
func (q *ListQuery) applySort(query squirrel.SelectBuilder) squirrel.SelectBuilder {
	if len(q.sortCriteria) == 0 {
		return query
	}

	name, order := models.ParseSortParam(q.sortParam)
	if q.sortParam != "" {
		if criterion, ok := q.criterionByName(name); ok {
			return query.OrderBy(fmt.Sprintf("%s %s", criterion.column, order))
		}
	}

	if q.defaultSortName != "" {
		if criterion, ok := q.criterionByName(q.defaultSortName); ok {
			return query.OrderBy(fmt.Sprintf("%s %s", criterion.column, q.defaultSortOrder))
		}
	}
	return query
}

// FetchListPage consumes the list query, in this fixed order: count the
// unfiltered scope, count the filtered scope, apply the pagination window,
// resolve sorting, execute, then run the relation loaders on the fetched
// records. Offset past the end of the result set is not an error, the page
// simply comes back empty.
func FetchListPage[DBModel, Model any](
	ctx context.Context,
	exec Executor,
	q *ListQuery,
	adapter func(dbModel DBModel) (Model, error),
	loaders ...RelationLoader[Model],
) ([]Model, models.Page, error) {
	selectQuery := q.selectQuery
	page := models.Page{}

	if q.paginated {
		total, err := SqlToCount(ctx, exec, q.countQuery)
		if err != nil {
			return nil, models.Page{}, err
		}

		filteredTotal := total
		if q.filter != nil {
			if filteredCount := q.filter(q.countQuery); filteredCount != nil {
				filteredTotal, err = SqlToCount(ctx, exec, *filteredCount)
				if err != nil {
					return nil, models.Page{}, err
				}
			}
		}

		page = models.Page{
			Offset:        q.page.Offset,
			Limit:         q.page.Limit,
			Total:         total,
			FilteredTotal: &filteredTotal,
		}
	}

	if q.filter != nil {
		if filtered := q.filter(selectQuery); filtered != nil {
			selectQuery = *filtered
		}
	}

	if q.paginated {
		selectQuery = selectQuery.
			Offset(uint64(q.page.Offset)).
			Limit(uint64(q.page.Limit))
	}

	selectQuery = q.applySort(selectQuery)

	records, err := SqlToListOfModels(ctx, exec, selectQuery, adapter)
	if err != nil {
		return nil, models.Page{}, err
	}

	for _, loader := range loaders {
		records, err = loader(ctx, exec, records)
		if err != nil {
			return nil, models.Page{}, err
		}
	}

	return records, page, nil
}
