package pb

//go:generate protoc -I .. --go_out=.. --go_opt=paths=source_relative --go-grpc_out=.. --go-grpc_opt=paths=source_relative v1/reducer.proto v1/registry.proto
//go:generate go run ../../../scripts/stripcomments -root .
