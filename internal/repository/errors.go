package repository

import "errors"

var (
	ErrNotFound = errors.New("not found")

	//unique制約違反（email / slug / order_ref）
	ErrConflict = errors.New("conflict")
)
