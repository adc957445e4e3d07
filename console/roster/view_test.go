package roster

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"staffdesk.com/staffdesk/staffdesk/v1/common"
)

func rosterOf(n int) []common.Employee {
	out := make([]common.Employee, 0, n)
	for i := 0; i < n; i++ {
		role := common.RoleUser
		if i%5 == 0 {
			role = common.RoleHR
		}
		out = append(out, common.Employee{
			ID:        fmt.Sprintf("e-%03d", i),
			FirstName: fmt.Sprintf("First%02d", i),
			LastName:  fmt.Sprintf("Last%02d", i),
			Email:     fmt.Sprintf("user%02d@staffdesk.local", i),
			Phone:     fmt.Sprintf("07%08d", i),
			Role:      common.RoleRef{Name: role},
		})
	}
	return out
}

func viewController(cache []common.Employee) *Controller {
	return &Controller{pageSize: 4, page: 1, cache: cache}
}

func TestViewPagination(t *testing.T) {
	c := viewController(rosterOf(10))

	page := c.View()
	assert.Equal(t, 1, page.Number)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 10, page.TotalFiltered)
	assert.Len(t, page.Records, 4)
	assert.Equal(t, 1, page.Start)
	assert.Equal(t, 4, page.End)

	// Every record appears exactly once across the pages.
	seen := make(map[string]int)
	for n := 1; n <= page.TotalPages; n++ {
		c.SetPage(n)
		for _, e := range c.View().Records {
			seen[e.ID]++
		}
	}
	assert.Len(t, seen, 10)
	for id, count := range seen {
		assert.Equal(t, 1, count, "record %s", id)
	}

	// Last page is the short one.
	c.SetPage(3)
	last := c.View()
	assert.Len(t, last.Records, 2)
	assert.Equal(t, 9, last.Start)
	assert.Equal(t, 10, last.End)
}

func TestViewPageClamping(t *testing.T) {
	c := viewController(rosterOf(10))

	c.SetPage(99)
	assert.Equal(t, 3, c.View().Number)

	c.SetPage(-1)
	assert.Equal(t, 1, c.View().Number)
}

func TestViewEmptyCache(t *testing.T) {
	c := viewController(nil)

	page := c.View()
	assert.Equal(t, 1, page.Number)
	assert.Equal(t, 1, page.TotalPages)
	assert.Empty(t, page.Records)
	assert.Zero(t, page.Start)
	assert.Zero(t, page.End)
}

func TestViewSearchFilter(t *testing.T) {
	c := viewController([]common.Employee{
		{ID: "a", FirstName: "Amara", LastName: "Perera", Email: "amara@staffdesk.local", Phone: "0711111111"},
		{ID: "b", FirstName: "Bimal", LastName: "Silva", Email: "bimal@staffdesk.local", Phone: "0722222222"},
		{ID: "c", FirstName: "Chamari", LastName: "Fernando", Email: "chamari@staffdesk.local", Phone: "0733333333"},
	})

	tests := []struct {
		name string
		term string
		want []string
	}{
		{"Case-insensitive first name", "AMARA", []string{"a"}},
		{"Last name substring", "ilva", []string{"b"}},
		{"Email match", "chamari@", []string{"c"}},
		{"Phone match", "072222", []string{"b"}},
		{"No match", "zzz", nil},
		{"Empty term matches all", "", []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c.SetSearch(tt.term)
			var got []string
			for _, e := range c.View().Records {
				got = append(got, e.ID)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestViewRoleFilter(t *testing.T) {
	c := viewController(rosterOf(10))

	c.SetRoleFilter(common.RoleHR)
	page := c.View()
	assert.Equal(t, 2, page.TotalFiltered)
	for _, e := range page.Records {
		assert.Equal(t, common.RoleHR, e.Role.String())
	}

	// Search composes with the role filter.
	c.SetSearch("First01")
	assert.Zero(t, c.View().TotalFiltered)
	c.SetSearch("First00")
	assert.Equal(t, 1, c.View().TotalFiltered)
}

func TestFilterChangeResetsPage(t *testing.T) {
	c := viewController(rosterOf(10))

	c.SetPage(3)
	c.SetSearch("user")
	assert.Equal(t, 1, c.View().Number)

	c.SetPage(2)
	c.SetRoleFilter(common.RoleUser)
	assert.Equal(t, 1, c.View().Number)

	// Setting the same value again is not a change.
	c.SetPage(2)
	c.SetRoleFilter(common.RoleUser)
	assert.Equal(t, 2, c.View().Number)
}

func TestNextPreviousPage(t *testing.T) {
	c := viewController(rosterOf(10))

	c.PreviousPage()
	assert.Equal(t, 1, c.View().Number)

	c.NextPage()
	c.NextPage()
	assert.Equal(t, 3, c.View().Number)
	c.NextPage()
	assert.Equal(t, 3, c.View().Number)
}

func TestRoles(t *testing.T) {
	c := viewController([]common.Employee{
		{ID: "a", Role: common.RoleRef{Name: "ADMIN"}},
		{ID: "b", Role: common.RoleRef{Name: "USER"}},
		{ID: "c", Role: common.RoleRef{Name: "ADMIN"}},
		{ID: "d"},
		{ID: "e", Role: common.RoleRef{Name: "HR"}},
	})

	assert.Equal(t, []string{"ADMIN", "USER", "HR"}, c.Roles())
}
