package domain

// Department groups employees by name. EmployeeCount is derived from the
// employees collection on every read and never stored.
type Department struct {
	DepartmentID  string `json:"departmentID"`
	Nom           string `json:"nom"`
	EmployeeCount int64  `json:"nombreEmployes"`
}

// DepartmentDetail is a department with the employees currently referencing it by name.
type DepartmentDetail struct {
	Department
	Employees []Employee `json:"employes"`
}
