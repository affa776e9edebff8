package service

// ChatHistoryLimit exposes chatHistoryLimit to the external test package.
const ChatHistoryLimit = chatHistoryLimit
