package config

// Default paths and names for the storage backends
const (
	// DefaultDatabasePath is the default path for the sqlite database
	DefaultDatabasePath = "./bookshelf.db"

	// DefaultDynamoDBTable is the default DynamoDB table name
	DefaultDynamoDBTable = "books"
)
