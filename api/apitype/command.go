package apitype

type Command interface {
}
