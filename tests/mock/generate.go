package mock

//go:generate mockgen -destination=commands/commands.go -package=commandsmock github.com/Hunterii1/asl-market-sub001/internal/usecase/commands AuthCommands,ExpiryCommands,MatchingCommands,OutboxCommands,RatingCommands,ResponseCommands
//go:generate mockgen -destination=queries/queries.go -package=queriesmock github.com/Hunterii1/asl-market-sub001/internal/usecase/queries CapacityQueries,GateQueries,MatchingQueries,RatingQueries,ResponseQueries,UserQueries
