package roster

import (
	"strings"

	"staffdesk.com/staffdesk/staffdesk/v1/common"
	"staffdesk.com/staffdesk/utils"
)

// Page is one screen of the derived view.
type Page struct {
	Records       []common.Employee
	Number        int
	TotalPages    int
	TotalFiltered int
	// Start and End are the 1-based bounds shown as "Showing X-Y of Z".
	// Both are zero when the filtered set is empty.
	Start int
	End   int
}

// SetSearch updates the free-text filter. Any change drops back to page 1.
func (c *Controller) SetSearch(term string) {
	if term == c.search {
		return
	}
	c.search = term
	c.page = 1
}

func (c *Controller) Search() string { return c.search }

// SetRoleFilter filters by the normalized role display string. Empty means no
// role filter. Any change drops back to page 1.
func (c *Controller) SetRoleFilter(role string) {
	if role == c.roleFilter {
		return
	}
	c.roleFilter = role
	c.page = 1
}

func (c *Controller) RoleFilter() string { return c.roleFilter }

func (c *Controller) SetPage(n int) {
	c.page = n
}

func (c *Controller) NextPage() {
	if c.page < c.View().TotalPages {
		c.page++
	}
}

func (c *Controller) PreviousPage() {
	if c.page > 1 {
		c.page--
	}
}

// View recomputes the derived page from the cache and the current filters.
// Pure and synchronous: no network, no mutation.
func (c *Controller) View() Page {
	filtered := utils.Filter(c.cache, c.matches)

	totalPages := (len(filtered) + c.pageSize - 1) / c.pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	page := c.page
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * c.pageSize
	end := start + c.pageSize
	if end > len(filtered) {
		end = len(filtered)
	}

	out := Page{
		Records:       filtered[start:end],
		Number:        page,
		TotalPages:    totalPages,
		TotalFiltered: len(filtered),
	}
	if len(filtered) > 0 {
		out.Start = start + 1
		out.End = end
	}
	return out
}

func (c *Controller) matches(e common.Employee) bool {
	if c.roleFilter != "" && e.Role.String() != c.roleFilter {
		return false
	}
	if c.search == "" {
		return true
	}
	term := strings.ToLower(c.search)
	return strings.Contains(strings.ToLower(e.FirstName), term) ||
		strings.Contains(strings.ToLower(e.LastName), term) ||
		strings.Contains(strings.ToLower(e.Email), term) ||
		strings.Contains(strings.ToLower(e.Phone), term)
}

// Roles lists the distinct normalized role strings present in the cache, in
// first-seen order, for populating the role filter control.
func (c *Controller) Roles() []string {
	seen := make(map[string]bool)
	var roles []string
	for _, e := range c.cache {
		role := e.Role.String()
		if role == "" || seen[role] {
			continue
		}
		seen[role] = true
		roles = append(roles, role)
	}
	return roles
}
