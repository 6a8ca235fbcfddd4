package common

// PhyscVersion is the current version of physc.
const PhyscVersion = "0.1.0"
